package styles

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/typeahead/internal/domain/entity"
)

const historyValueWidth = 48

// RenderHistoryTable renders recorded selections, most recent first.
func (t *Theme) RenderHistoryTable(entries []*entity.Selection, now time.Time) string {
	if len(entries) == 0 {
		return t.Subtle.Render("  No history recorded yet.")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Truncate(e.Value, historyValueWidth),
			strconv.FormatInt(e.UseCount, 10),
			RelativeTime(e.LastUsed, now),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("Value", "Uses", "Last used").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.TableHeader.Padding(0, 1)
			case col == 0:
				return t.TableCell.Padding(0, 1)
			default:
				return t.TableCellMuted.Padding(0, 1)
			}
		})
	return tbl.Render()
}

// RenderCleared renders the outcome of clearing history.
func (t *Theme) RenderCleared(count int64) string {
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(IconTrash)
	return fmt.Sprintf("  %s Removed %s from history\n", icon, t.Highlight.Render(pluralEntries(count)))
}

// RenderForgotten renders the outcome of forgetting one value.
func (t *Theme) RenderForgotten(value string, found bool) string {
	if !found {
		icon := t.ErrorStyle.Render(IconX)
		return fmt.Sprintf("  %s %s is not in history\n", icon, t.Highlight.Render(value))
	}
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(IconCheck)
	return fmt.Sprintf("  %s Forgot %s\n", icon, t.Highlight.Render(value))
}

// RenderPath renders a labelled filesystem path.
func (t *Theme) RenderPath(icon, label, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	return fmt.Sprintf("  %s %s %s\n", iconStyle.Render(icon), label, t.Subtle.Render(path))
}

func pluralEntries(n int64) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}

// RelativeTime formats tm relative to now as a short human-readable string.
func RelativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
