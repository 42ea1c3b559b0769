package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// HandleDeleteConfirm handles task deletion confirmation.
func HandleDeleteConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return confirmDeleteTask(m)
	case "n", "N", "esc":
		m.UiState.SetPendingDeleteID("")
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return nil
}

// confirmDeleteTask performs the deletion and shows the undo toast.
func confirmDeleteTask(m *tui.Model) tea.Cmd {
	id := m.UiState.PendingDeleteID()
	m.UiState.SetPendingDeleteID("")
	m.UiState.SetMode(state.NormalMode)
	if id == "" {
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	task, err := m.Store.Delete(ctx, id)
	if err != nil {
		slog.Error("Error deleting task", "task", id, "error", err)
		m.NotificationState.Add(state.LevelError, userMessage(err))
		return nil
	}

	m.UiState.ClampSelection(len(m.Rows()))
	seq := m.UndoState.Show(*task)
	return tui.UndoExpiryCmd(m.Store.UndoWindow(), seq)
}
