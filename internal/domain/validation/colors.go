// Package validation holds value checks shared by configuration and rendering.
package validation

import (
	"regexp"
	"strconv"
)

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

const maxANSIColor = 255

// IsHexColor reports whether value is #RGB or #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// IsANSIColor reports whether value is an ANSI 256-color index.
func IsANSIColor(value string) bool {
	if value == "" || len(value) > 3 {
		return false
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= maxANSIColor
}

// IsTerminalColor reports whether a terminal renderer accepts value as a color.
func IsTerminalColor(value string) bool {
	return IsHexColor(value) || IsANSIColor(value)
}

// PaletteColor names one palette entry for ValidatePalette.
type PaletteColor struct {
	Name  string
	Value string
}

// ValidatePalette returns one message per invalid color, prefixed with prefix.
func ValidatePalette(prefix string, colors ...PaletteColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsTerminalColor(c.Value) {
			errs = append(errs, prefix+"."+c.Name+" "+strconv.Quote(c.Value)+" must be a hex color like #RRGGBB or an ANSI color number")
		}
	}
	return errs
}
