package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/tui/theme"
	"github.com/thenoetrevino/jot/internal/view"
)

// TaskRowProps configures a display row
type TaskRowProps struct {
	Task     models.Task
	Selected bool
	Width    int
}

// SanitizeText strips terminal escape sequences and control characters from
// user supplied text before it reaches the screen
func SanitizeText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// RenderTaskRow renders one task
//
//	┃ [Work] Due: 2024-01-01  [High]  📷
//	┃ task text, wrapped to the terminal width
func RenderTaskRow(props TaskRowProps) string {
	t := props.Task
	width := max(props.Width-4, 10)

	category := ChipStyle.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(t.CategoryColor)).
		Render(string(t.Category))

	parts := []string{category}
	if due := view.DueLabel(t); due != "" {
		parts = append(parts, SubtleStyle.Render(due))
	}
	parts = append(parts, renderPriorityChip(t))
	if t.Photo != nil {
		parts = append(parts, SubtleStyle.Render("[photo]"))
	}
	header := strings.Join(parts, " ")

	text := wordwrap.String(SanitizeText(t.Text), width)
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fontColorFor(t))).
		Render(text)

	style := RowStyle.BorderForeground(lipgloss.Color(view.AccentColor(t)))
	if props.Selected {
		style = style.Background(lipgloss.Color(theme.SelectedBg))
		header = lipgloss.NewStyle().Bold(true).Render("> ") + header
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func renderPriorityChip(t models.Task) string {
	return ChipStyle.
		Foreground(lipgloss.Color(view.AccentColor(t))).
		Render(string(t.Priority))
}

// fontColorFor keeps black text readable on dark terminals
func fontColorFor(t models.Task) string {
	if t.FontColor == "" || t.FontColor == models.DefaultFontColor {
		return theme.Normal
	}
	return t.FontColor
}
