package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/typeahead/internal/cli/styles"
	"github.com/bnema/typeahead/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create, locate, edit and describe the typeahead configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and its JSON schema",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration, history and log paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configSchemaCmd, configPathCmd, configEditCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.Manager.GetConfigFile()
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := config.EnsureDirectories(); err != nil {
		return err
	}
	if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	schemaPath, err := config.WriteSchemaFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, app.Theme.RenderPath(styles.IconConfig, "Config", path))
	fmt.Fprint(out, app.Theme.RenderPath(styles.IconInfo, "Schema", schemaPath))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, app.Theme.RenderPath(styles.IconConfig, "Config ", app.Manager.GetConfigFile()))
	fmt.Fprint(out, app.Theme.RenderPath(styles.IconDatabase, "History", app.Config.History.Path))
	if logFile := app.Config.Logging.File; logFile != "" {
		fmt.Fprint(out, app.Theme.RenderPath(styles.IconClock, "Logs   ", logFile))
	} else if logFile, err := config.GetLogFile(); err == nil {
		fmt.Fprint(out, app.Theme.RenderPath(styles.IconClock, "Logs   ", logFile))
	}
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.Manager.GetConfigFile()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
			return err
		}
	}

	// Get editor from environment (prefer $VISUAL, fallback to $EDITOR)
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
