package handlers

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// ============================================================================
// EDIT ROW HANDLERS
// ============================================================================

// UpdateEditRow handles all messages while a row is being edited. Keys that
// are not edit commands go to the focused text input.
func UpdateEditRow(m *tui.Model, msg tea.Msg) tea.Cmd {
	edit := m.EditState
	if edit == nil {
		endEdit(m)
		return nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return edit.Update(msg)
	}

	switch keyMsg.String() {
	case "enter":
		return saveEdit(m)
	case "esc":
		// a photo read for this row is abandoned
		if m.Pending != nil && m.Pending.Update != nil {
			m.Pending = nil
		}
		endEdit(m)
		return nil
	case "tab", "down":
		return edit.FocusNext()
	case "shift+tab", "up":
		return edit.FocusPrev()
	case "ctrl+left":
		edit.CycleCategory(-1)
		return nil
	case "ctrl+right":
		edit.CycleCategory(1)
		return nil
	case "left", "h":
		if edit.Focus() == state.FieldCategory {
			edit.CycleCategory(-1)
			return nil
		}
	case "right", "l":
		if edit.Focus() == state.FieldCategory {
			edit.CycleCategory(1)
			return nil
		}
	}
	return edit.Update(msg)
}

// endEdit returns the row to display mode
func endEdit(m *tui.Model) {
	m.EditState = nil
	m.ViewState.SetEditID("")
	m.UiState.SetMode(state.NormalMode)
}

func updateRequest(v state.EditValues) taskservice.UpdateTaskRequest {
	return taskservice.UpdateTaskRequest{
		ID:            v.TaskID,
		Text:          v.Text,
		Category:      v.Category,
		CategoryColor: strings.TrimSpace(v.CategoryColor),
		FontColor:     strings.TrimSpace(v.FontColor),
		DueDate:       strings.TrimSpace(v.DueDate),
		RemovePhoto:   v.RemovePhoto,
	}
}

// saveEdit persists the edit row. With a new photo path the row stays open
// until the read finishes.
func saveEdit(m *tui.Model) tea.Cmd {
	v := m.EditState.Values()
	req := updateRequest(v)
	if path := strings.TrimSpace(v.PhotoPath); path != "" {
		if err := req.Validate(); err != nil {
			rejectRequest(m, err)
			return nil
		}
		return startPhotoRead(m, &tui.PendingMutation{Update: &req}, path)
	}
	commitUpdate(m, req)
	return nil
}
