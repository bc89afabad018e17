package typeahead

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidConfig is returned by New when the configuration does not validate.
var ErrInvalidConfig = errors.New("invalid typeahead config")

var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Config enumerates every option the widget recognizes.
// Start from DefaultConfig; the zero value disables hover selection.
type Config struct {
	// HoverSelect makes pointer hover over an option change the active selection.
	HoverSelect bool `mapstructure:"hover_select" toml:"hover_select" json:"hover_select"`
	// AutoFocus asks the host to focus the input as soon as the widget is activated.
	AutoFocus bool `mapstructure:"auto_focus" toml:"auto_focus" json:"auto_focus"`
	// Placeholder is shown by the editable field while it is empty.
	Placeholder string `mapstructure:"placeholder" toml:"placeholder" json:"placeholder"`
	// InputName is forwarded to the editable field.
	InputName string `mapstructure:"input_name" toml:"input_name" json:"input_name"`
	// HintDisabled marks the hint field as non-interactive.
	HintDisabled bool `mapstructure:"hint_disabled" toml:"hint_disabled" json:"hint_disabled"`
	// HintPresentation hides the hint field from assistive technology.
	HintPresentation bool `mapstructure:"hint_presentation" toml:"hint_presentation" json:"hint_presentation"`
	// Namespace seeds the identity record. Empty generates a unique one.
	Namespace string `mapstructure:"namespace" toml:"namespace" json:"namespace"`
}

// DefaultConfig returns the widget defaults.
func DefaultConfig() Config {
	return Config{
		HoverSelect:      true,
		AutoFocus:        false,
		HintDisabled:     true,
		HintPresentation: true,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if !namespacePattern.MatchString(c.Namespace) {
		result = multierror.Append(result,
			fmt.Errorf("namespace %q may only contain letters, digits, '-' and '_'", c.Namespace))
	}
	if strings.ContainsAny(c.Placeholder, "\r\n") {
		result = multierror.Append(result, errors.New("placeholder must be a single line"))
	}
	if strings.ContainsAny(c.InputName, " \t\r\n") {
		result = multierror.Append(result, fmt.Errorf("input name %q must not contain whitespace", c.InputName))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
