package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const pickCharLimit = 1024

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "> "
	return ti
}

// NewPickInput creates the picker's editable field.
func NewPickInput(theme *Theme, placeholder string) textinput.Model {
	ti := NewStyledInput(theme, placeholder)
	ti.CharLimit = pickCharLimit
	return ti
}

// RestyleInput reapplies theme colors to an existing input, keeping its value.
func RestyleInput(ti *textinput.Model, theme *Theme) {
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool, width int) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(input)
}
