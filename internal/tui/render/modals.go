package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/components"
	"github.com/thenoetrevino/jot/internal/tui/layers"
)

// RenderAddFormLayer renders the add task form as a centered modal
func RenderAddFormLayer(m *tui.Model) *lipgloss.Layer {
	if m.FormState.AddForm == nil {
		return nil
	}

	width := min(max(m.UiState.Width()*3/5, 40), m.UiState.Width())
	title := components.TitleStyle.Render("New task")
	hint := components.SubtleStyle.Render("enter next · ctrl+s save · esc cancel")

	box := components.FormBoxStyle.
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.FormState.AddForm.View(), "", hint))

	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderDeleteConfirmLayer renders the task deletion confirmation dialog
func RenderDeleteConfirmLayer(m *tui.Model) *lipgloss.Layer {
	task, ok := m.Store.Get(m.UiState.PendingDeleteID())
	if !ok {
		return nil
	}

	text := components.SanitizeText(task.Text)
	if len([]rune(text)) > 40 {
		text = string([]rune(text)[:39]) + "…"
	}

	box := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", text))

	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the key reference as a centered modal
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	width := min(max(m.UiState.Width()*3/5, 40), m.UiState.Width()-4)
	content := components.RenderMarkdown(HelpMarkdown(m.Config.KeyMappings), width)
	box := components.HelpBoxStyle.Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// HelpMarkdown lists the configured keys as a markdown document
func HelpMarkdown(km config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")

	section := func(name string, rows [][2]string) {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", name)
		for _, r := range rows {
			fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
		}
		b.WriteString("\n")
	}

	section("Tasks", [][2]string{
		{km.AddTask, "add a task"},
		{km.EditTask + "` / `enter", "edit the selected task"},
		{km.TogglePriority, "cycle priority"},
		{km.DeleteTask, "remove (asks to confirm)"},
		{km.UndoDelete, "undo the last removal"},
	})
	section("View", [][2]string{
		{km.CycleFilter, "cycle the category filter"},
		{km.ToggleSort, "toggle sort by due date"},
		{km.NextTask, "next task"},
		{km.PrevTask, "previous task"},
	})
	section("Edit row", [][2]string{
		{"tab", "next field"},
		{"shift+tab", "previous field"},
		{"ctrl+left/right", "change category"},
		{"enter", "save"},
		{"esc", "cancel"},
	})
	section("Other", [][2]string{
		{km.ShowHelp, "toggle this help"},
		{km.Quit, "quit"},
	})
	return b.String()
}
