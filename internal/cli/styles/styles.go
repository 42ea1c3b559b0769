// Package styles renders tasks for human-readable CLI output.
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/view"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	IDStyle       lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	IDStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderCategoryChip renders a category as "[name]" in its color
func RenderCategoryChip(t models.Task) string {
	return BoldColoredText("["+string(t.Category)+"]", t.CategoryColor)
}

// RenderTaskLine renders one task on a single line
// Format: "1a2b3c4d  [Work] Due: 2024-01-01  High  text"
func RenderTaskLine(shortID string, t models.Task) string {
	parts := []string{IDStyle.Render(shortID), RenderCategoryChip(t)}
	if due := view.DueLabel(t); due != "" {
		parts = append(parts, SubtitleStyle.Render(due))
	}
	if t.Priority != models.PriorityNormal {
		parts = append(parts, BoldColoredText(string(t.Priority), view.AccentColor(t)))
	}
	if t.Photo != nil {
		parts = append(parts, SubtitleStyle.Render("[photo]"))
	}
	parts = append(parts, CleanText(t.Text))
	return strings.Join(parts, "  ")
}

// CleanText strips escape sequences and folds the text onto one line
func CleanText(s string) string {
	return strings.Join(strings.Fields(ansi.Strip(s)), " ")
}
