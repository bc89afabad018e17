package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/typeahead/internal/application/port"
	"github.com/bnema/typeahead/internal/application/usecase"
	"github.com/bnema/typeahead/internal/cli/model"
	"github.com/bnema/typeahead/internal/cli/styles"
	"github.com/bnema/typeahead/internal/domain/autocomplete"
	"github.com/bnema/typeahead/internal/infrastructure/config"
	"github.com/bnema/typeahead/internal/infrastructure/script"
	"github.com/bnema/typeahead/internal/infrastructure/source"
	"github.com/bnema/typeahead/internal/logging"
	"github.com/bnema/typeahead/internal/ui/typeahead"
)

// ErrCancelled is returned when the picker exits without a selection.
var ErrCancelled = errors.New("selection cancelled")

const ttyPath = "/dev/tty"

var (
	pickQuery      string
	pickMax        int
	pickNoHistory  bool
	pickHintScript string
)

var pickCmd = &cobra.Command{
	Use:   "pick [file...]",
	Short: "Interactively pick a line",
	Long: `Open the interactive picker over the lines of the given files, standard
input (when piped) and previously picked values. The picked value is printed
on standard output; the picker itself draws on standard error.

Keys:
  tab, end, →      accept the inline hint (← for right-to-left text)
  ↑/↓              open the list, then move through the suggestions
  enter            pick the active value
  esc              close the list, press again to cancel
  shift+tab        move focus to the Done button`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().StringVarP(&pickQuery, "query", "q", "", "initial input")
	pickCmd.Flags().IntVar(&pickMax, "max", 0, "maximum suggestions shown (default from config)")
	pickCmd.Flags().BoolVar(&pickNoHistory, "no-history", false, "neither offer nor record history")
	pickCmd.Flags().StringVar(&pickHintScript, "hint-script", "", "JavaScript file defining hint(input, options)")
}

func runPick(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithCommand(app.Ctx(), "pick")
	cfg := app.Config
	useHistory := cfg.History.Enabled && !pickNoHistory

	sources := make([]port.CandidateSource, 0, len(args)+2)
	for _, path := range args {
		sources = append(sources, source.NewFile(path))
	}
	stdinPiped := source.IsPiped(os.Stdin)
	if stdinPiped {
		sources = append(sources, source.NewReader("stdin", os.Stdin))
	}
	if useHistory {
		sources = append(sources, source.NewHistory(app.History, cfg.History.MaxEntries))
	}

	candidates, err := usecase.NewLoadCandidatesUseCase(sources...).Execute(ctx)
	if err != nil {
		return fmt.Errorf("load candidates: %w", err)
	}

	resolver, err := hintResolver(ctx, cfg)
	if err != nil {
		return err
	}

	maxResults := cfg.Candidates.MaxResults
	if pickMax > 0 {
		maxResults = pickMax
	}
	suggest := usecase.NewSuggestCandidatesUseCase(usecase.SuggestOptions{
		MaxResults:    maxResults,
		Fuzzy:         cfg.Candidates.Fuzzy,
		CaseSensitive: cfg.Typeahead.CaseSensitive,
	})

	m, err := model.NewPickModel(ctx, model.PickParams{
		Theme:             app.Theme,
		Widget:            widgetConfig(cfg.Typeahead),
		Suggest:           suggest,
		Candidates:        candidates,
		Resolver:          resolver,
		MaxVisibleOptions: cfg.Typeahead.MaxVisibleOptions,
		Query:             pickQuery,
	})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
	}
	if stdinPiped {
		tty, err := os.Open(ttyPath)
		if err != nil {
			return fmt.Errorf("open terminal for input: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}
	p := tea.NewProgram(m, opts...)

	app.Manager.OnConfigChange(func(c *config.Config) {
		p.Send(model.ThemeChangedMsg{Theme: styles.NewTheme(c)})
	})
	if _, statErr := os.Stat(app.Manager.GetConfigFile()); statErr == nil {
		if err := app.Manager.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	result := m.Result()
	if !result.Picked {
		return ErrCancelled
	}
	if useHistory {
		if err := app.ManageHistoryUC.Record(ctx, result.Value); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to record selection")
		}
	}
	return printResult(cmd.OutOrStdout(), result.Value)
}

func printResult(w io.Writer, value string) error {
	_, err := fmt.Fprintln(w, value)
	return err
}

func hintResolver(ctx context.Context, cfg *config.Config) (autocomplete.HintResolver[string], error) {
	path := cfg.Typeahead.HintScript
	if pickHintScript != "" {
		path = pickHintScript
	}
	if path == "" {
		return autocomplete.StringResolver(cfg.Typeahead.CaseSensitive), nil
	}

	r, err := script.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load hint script: %w", err)
	}
	return r.HintResolver(), nil
}

func widgetConfig(c config.TypeaheadConfig) typeahead.Config {
	wc := typeahead.DefaultConfig()
	wc.HoverSelect = c.HoverSelect
	wc.AutoFocus = c.AutoFocus
	wc.Placeholder = c.Placeholder
	wc.InputName = c.InputName
	wc.Namespace = c.Namespace
	return wc
}
