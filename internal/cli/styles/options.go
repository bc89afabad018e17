package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// OptionRow is one rendered row of the option list.
type OptionRow struct {
	Text   string
	Active bool
	// Match is highlighted inside Text, usually the value the user typed.
	Match string
}

// RenderOption renders row into at most width cells.
func (t *Theme) RenderOption(row OptionRow, width int) string {
	style := t.Option
	marker := "  "
	if row.Active {
		style = t.OptionActive
		marker = IconCursor + " "
	}

	avail := width - style.GetHorizontalFrameSize() - runewidth.StringWidth(marker)
	text := Truncate(row.Text, avail)

	before, match, after := SplitMatch(text, row.Match)
	body := before
	if match != "" {
		body += t.OptionMatch.Inherit(style).Render(match)
	}
	body += after

	return style.Width(width).MaxWidth(width).Render(marker + body)
}

// RenderHint renders the ghost completion that follows the typed text.
func (t *Theme) RenderHint(suffix string) string {
	if suffix == "" {
		return ""
	}
	return t.Hint.Render(suffix)
}

// RenderButton renders a focusable button label.
func (t *Theme) RenderButton(label string, focused bool) string {
	if focused {
		return t.ButtonFocused.Render(label)
	}
	return t.Button.Render(label)
}

// RenderStatus renders the accessibility status line.
func (t *Theme) RenderStatus(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return t.StatusLine.Render(strings.Join(nonEmpty, " · "))
}

// AlignRight pads s on the left so it ends at width cells. Used for RTL input.
func AlignRight(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}

// Truncate shortens s to fit width terminal cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// SplitMatch splits text around the first case-insensitive occurrence of match.
// When match does not occur, before holds the whole text.
func SplitMatch(text, match string) (before, matched, after string) {
	if match == "" {
		return text, "", ""
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(match))
	// Lowercasing can change byte lengths; only trust offsets that still line up.
	if idx < 0 || idx+len(match) > len(text) || !strings.EqualFold(text[idx:idx+len(match)], match) {
		return text, "", ""
	}
	return text[:idx], text[idx : idx+len(match)], text[idx+len(match):]
}
