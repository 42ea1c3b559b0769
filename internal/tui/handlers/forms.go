package handlers

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/jot/internal/models"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// UpdateAddForm handles all messages when in AddFormMode
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func UpdateAddForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	if m.FormState.AddForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		closeAddForm(m)
		return tea.ClearScreen
	}

	model, cmd := m.FormState.AddForm.Update(msg)
	m.FormState.AddForm = model.(*huh.Form)

	switch m.FormState.AddForm.State {
	case huh.StateCompleted:
		values := m.FormState.Values
		closeAddForm(m)
		return tea.Batch(submitAddForm(m, values), tea.ClearScreen)
	case huh.StateAborted:
		closeAddForm(m)
		return tea.ClearScreen
	}
	return cmd
}

func closeAddForm(m *tui.Model) {
	m.FormState.AddForm = nil
	m.UiState.SetMode(state.NormalMode)
}

// createRequest turns the form values into a store request. A cleared due
// date means no due date rather than today.
func createRequest(v state.AddFormValues) taskservice.CreateTaskRequest {
	due := strings.TrimSpace(v.DueDate)
	return taskservice.CreateTaskRequest{
		Text:          v.Text,
		Category:      models.Category(v.Category),
		CategoryColor: strings.TrimSpace(v.CategoryColor),
		FontColor:     strings.TrimSpace(v.FontColor),
		DueDate:       due,
		NoDueDate:     due == "",
	}
}

// submitAddForm creates the task, reading the photo first when a path was given
func submitAddForm(m *tui.Model, v state.AddFormValues) tea.Cmd {
	req := createRequest(v)
	if path := strings.TrimSpace(v.PhotoPath); path != "" {
		if err := req.Validate(); err != nil {
			rejectRequest(m, err)
			return nil
		}
		return startPhotoRead(m, &tui.PendingMutation{Create: &req}, path)
	}
	commitCreate(m, req)
	return nil
}
