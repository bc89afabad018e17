package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/typeahead/internal/cli/styles"
	"github.com/bnema/typeahead/internal/logging"
)

var (
	historyJSON bool
	historyMax  int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage picked values",
	Long:  `List, forget or clear the values recorded by previous picks.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently picked values",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every recorded value",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var historyInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the history database location and size",
	Args:  cobra.NoArgs,
	RunE:  runHistoryInfo,
}

var historyForgetCmd = &cobra.Command{
	Use:   "forget <value>",
	Short: "Remove one recorded value",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistoryForget,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyInfoCmd, historyClearCmd, historyForgetCmd)

	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyListCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show")
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithCommand(app.Ctx(), "history list")

	entries, err := app.ManageHistoryUC.Recent(ctx, historyMax)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}

	if historyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderHistoryTable(entries, time.Now()))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithCommand(app.Ctx(), "history clear")

	removed, err := app.ManageHistoryUC.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), app.Theme.RenderCleared(removed))
	return nil
}

func runHistoryForget(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithCommand(app.Ctx(), "history forget")

	value := strings.Join(args, " ")
	found, err := app.ManageHistoryUC.Forget(ctx, value)
	if err != nil {
		return fmt.Errorf("forget %q: %w", value, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), app.Theme.RenderForgotten(value, found))
	return nil
}

func runHistoryInfo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithCommand(app.Ctx(), "history info")

	info, err := app.HistoryInfo(ctx)
	if err != nil {
		return fmt.Errorf("inspect history: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, app.Theme.RenderPath(styles.IconDatabase, "Database", info.Path))
	fmt.Fprintf(out, "  %s entries, schema version %d\n", app.Theme.Highlight.Render(strconv.FormatInt(info.Entries, 10)), info.SchemaVersion)
	return nil
}
