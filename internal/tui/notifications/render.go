package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// severityOf maps a state level onto a render severity
func severityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}

// RenderInline renders a compact single line notification (for the status area)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders a compact notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(severityOf(n.Level), n.Message)
}

// RenderToast renders a bordered banner, used for the undo prompt
func RenderToast(severity Severity, title, message string) string {
	style := severity.style()

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Render(style.icon + " " + title)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}
