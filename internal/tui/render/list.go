package render

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/components"
	"github.com/thenoetrevino/jot/internal/tui/notifications"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// ViewTaskList renders the header, the visible rows and the status bar
func ViewTaskList(m *tui.Model) string {
	width := m.UiState.Width()
	rows := m.Rows()
	m.UiState.ClampSelection(len(rows))

	header := components.TitleStyle.Render("jot")
	footer := renderFooter(m, len(rows))

	avail := max(m.UiState.Height()-lipgloss.Height(header)-lipgloss.Height(footer)-1, 1)

	var body string
	if len(rows) == 0 {
		body = components.SubtleStyle.Render(emptyMessage(m))
	} else {
		rendered := make([]string, len(rows))
		for i, row := range rows {
			if row.Editing && m.EditState != nil {
				rendered[i] = components.RenderEditRow(components.EditRowProps{
					Edit:  m.EditState,
					Width: width,
				})
				continue
			}
			rendered[i] = components.RenderTaskRow(components.TaskRowProps{
				Task:     row.Task,
				Selected: i == m.UiState.SelectedRow() && m.UiState.Mode() != state.EditMode,
				Width:    width,
			})
		}
		body = visibleRows(m.UiState, rendered, avail)
	}

	body = lipgloss.NewStyle().Height(avail).MaxHeight(avail).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// visibleRows scrolls so the selected row fits in avail lines and joins the
// rows that are on screen
func visibleRows(ui *state.UIState, rendered []string, avail int) string {
	selected := ui.SelectedRow()
	offset := min(ui.ScrollOffset(), selected)

	used := 0
	for i := offset; i <= selected; i++ {
		used += lipgloss.Height(rendered[i])
	}
	for used > avail && offset < selected {
		used -= lipgloss.Height(rendered[offset])
		offset++
	}
	ui.SetScrollOffset(offset)

	var out []string
	used = 0
	for _, r := range rendered[offset:] {
		if used >= avail {
			break
		}
		out = append(out, r)
		used += lipgloss.Height(r)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func emptyMessage(m *tui.Model) string {
	if m.Store.Len() == 0 {
		return fmt.Sprintf("No tasks yet. Press %s to add one.", m.Config.KeyMappings.AddTask)
	}
	return fmt.Sprintf("No %s tasks. Press %s to change the filter.", m.ViewState.Filter(), m.Config.KeyMappings.CycleFilter)
}

// renderFooter stacks the loading line, the latest notification and the status bar
func renderFooter(m *tui.Model, count int) string {
	var lines []string

	if m.LoadingState.InFlight() {
		lines = append(lines, m.Spinner.View()+" "+m.LoadingState.Label()+"...")
	}
	if n, ok := m.NotificationState.Latest(); ok {
		lines = append(lines, notifications.RenderInlineFromState(n))
	}

	lines = append(lines, components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UiState.Width(),
		Mode:    m.UiState.Mode().String(),
		Filter:  m.ViewState.PendingFilter(),
		Sort:    m.ViewState.PendingSort().String(),
		Count:   count,
		Pending: m.ViewState.Dirty(),
		Help:    m.Config.KeyMappings.ShowHelp + " help",
	}))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderUndoToast(m *tui.Model) string {
	if !m.UndoState.Visible() {
		return ""
	}
	text := components.SanitizeText(m.UndoState.Task().Text)
	if len([]rune(text)) > 30 {
		text = string([]rune(text)[:29]) + "…"
	}
	return notifications.RenderToast(
		notifications.Info,
		"Task deleted",
		fmt.Sprintf("%q  press %s to undo", text, m.Config.KeyMappings.UndoDelete),
	)
}
