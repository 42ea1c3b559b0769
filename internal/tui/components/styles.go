// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// RowStyle frames a display row; the left border carries the priority accent
	RowStyle lipgloss.Style

	// EditRowStyle frames the inline edit row (edit color border)
	EditRowStyle lipgloss.Style

	// TitleStyle defines the appearance of the app header
	TitleStyle lipgloss.Style

	// SubtleStyle is used for placeholders and secondary text
	SubtleStyle lipgloss.Style

	// FormBoxStyle defines the base style for the add form (create color border)
	FormBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// ChipStyle is the base for category and priority chips
	ChipStyle lipgloss.Style

	// FocusedLabelStyle highlights the focused field label in the edit row
	FocusedLabelStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	theme.Init(colors)

	RowStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		PaddingLeft(1).
		MarginBottom(1)

	EditRowStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	ChipStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)

	FocusedLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.StatusBarText)).
		Background(lipgloss.Color(colors.StatusBarBg))
}
