package handlers

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		if m.UiState.Mode() == state.AddFormMode {
			return UpdateAddForm(m, msg)
		}
		return nil

	case tui.DebounceMsg:
		if m.ViewState.Commit(msg.Seq) {
			m.UiState.ClampSelection(len(m.Rows()))
		}
		return nil

	case tui.UndoExpiredMsg:
		m.UndoState.Expire(msg.Seq)
		return nil

	case tui.PhotoReadMsg:
		return handlePhotoRead(m, msg)

	case spinner.TickMsg:
		if !m.LoadingState.InFlight() {
			return nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return cmd
	}

	// Forms need ALL messages, not just key presses
	switch m.UiState.Mode() {
	case state.AddFormMode:
		return UpdateAddForm(m, msg)
	case state.EditMode:
		return UpdateEditRow(m, msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, keyMsg)
	case state.DeleteConfirmMode:
		return HandleDeleteConfirm(m, keyMsg)
	case state.HelpMode:
		return HandleHelpMode(m, keyMsg)
	}
	return nil
}
