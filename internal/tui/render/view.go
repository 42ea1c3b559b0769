package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/layers"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// The list is always the base layer. Later layers draw on top.
	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(ViewTaskList(m)),
	}

	if toast := layers.CreateBottomRightLayer(renderUndoToast(m), m.UiState.Width(), m.UiState.Height()); toast != nil {
		stack = append(stack, toast)
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.AddFormMode:
		modal = RenderAddFormLayer(m)
	case state.DeleteConfirmMode:
		modal = RenderDeleteConfirmLayer(m)
	case state.HelpMode:
		modal = RenderHelpLayer(m)
	}
	if modal != nil {
		stack = append(stack, modal)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}
