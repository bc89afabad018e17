package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/go-multierror"

	"github.com/bnema/typeahead/internal/domain/validation"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var result *multierror.Error

	result = multierror.Append(result, validateTypeahead(config)...)
	result = multierror.Append(result, validateCandidates(config)...)
	result = multierror.Append(result, validateHistory(config)...)
	result = multierror.Append(result, validateLogging(config)...)
	result = multierror.Append(result, validateAppearance(config)...)

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func validateTypeahead(config *Config) []error {
	var errs []error
	t := config.Typeahead
	if t.MaxVisibleOptions < 1 || t.MaxVisibleOptions > 100 {
		errs = append(errs, errors.New("typeahead.max_visible_options must be between 1 and 100"))
	}
	if !namespacePattern.MatchString(t.Namespace) {
		errs = append(errs, fmt.Errorf("typeahead.namespace %q may only contain letters, digits, '-' and '_'", t.Namespace))
	}
	if t.HintScript != "" {
		if _, err := os.Stat(t.HintScript); err != nil {
			errs = append(errs, fmt.Errorf("typeahead.hint_script: %w", err))
		}
	}
	return errs
}

func validateCandidates(config *Config) []error {
	if config.Candidates.MaxResults < 0 {
		return []error{errors.New("candidates.max_results must be non-negative")}
	}
	return nil
}

func validateHistory(config *Config) []error {
	if config.History.MaxEntries < 0 {
		return []error{errors.New("history.max_entries must be non-negative")}
	}
	return nil
}

func validateLogging(config *Config) []error {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		return nil
	}
	return []error{fmt.Errorf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level)}
}

func validateAppearance(config *Config) []error {
	p := config.Appearance.Palette
	msgs := validation.ValidatePalette("appearance.palette",
		validation.PaletteColor{Name: "background", Value: p.Background},
		validation.PaletteColor{Name: "surface", Value: p.Surface},
		validation.PaletteColor{Name: "text", Value: p.Text},
		validation.PaletteColor{Name: "muted", Value: p.Muted},
		validation.PaletteColor{Name: "accent", Value: p.Accent},
		validation.PaletteColor{Name: "border", Value: p.Border},
	)
	errs := make([]error, len(msgs))
	for i, msg := range msgs {
		errs[i] = errors.New(msg)
	}
	return errs
}
