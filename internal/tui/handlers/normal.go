package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/huhforms"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode handles keyboard input in the task list.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return tea.Quit

	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil

	case km.AddTask:
		return openAddForm(m)

	case km.EditTask, "enter":
		return startEdit(m)

	case km.TogglePriority:
		togglePriority(m)
		return nil

	case km.DeleteTask:
		if task, ok := m.CurrentTask(); ok {
			m.UiState.SetPendingDeleteID(task.ID)
			m.UiState.SetMode(state.DeleteConfirmMode)
		}
		return nil

	case km.UndoDelete:
		return undoDelete(m)

	case km.CycleFilter:
		return tui.DebounceCmd(m.Config.DebounceDelay, m.ViewState.CycleFilter())

	case km.ToggleSort:
		return tui.DebounceCmd(m.Config.DebounceDelay, m.ViewState.ToggleSort())

	case km.NextTask, "down":
		moveSelection(m, 1)
		return nil

	case km.PrevTask, "up":
		moveSelection(m, -1)
		return nil

	case "esc":
		m.NotificationState.Clear()
		return nil
	}
	return nil
}

func moveSelection(m *tui.Model, delta int) {
	m.UiState.SetSelectedRow(m.UiState.SelectedRow() + delta)
	m.UiState.ClampSelection(len(m.Rows()))
}

// openAddForm builds a fresh add form. The due date starts at today and the
// category at the active filter.
func openAddForm(m *tui.Model) tea.Cmd {
	m.FormState.Reset(string(m.DefaultCategory()), models.Today(m.Now()))
	m.FormState.AddForm = huhforms.CreateAddTaskForm(&m.FormState.Values).
		WithTheme(huhforms.CreateJotTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.AddFormMode)
	return m.FormState.AddForm.Init()
}

// startEdit turns the selected row into the edit row
func startEdit(m *tui.Model) tea.Cmd {
	task, ok := m.CurrentTask()
	if !ok {
		return nil
	}
	edit, cmd := state.NewEditState(task)
	m.EditState = edit
	m.ViewState.SetEditID(task.ID)
	m.UiState.SetMode(state.EditMode)
	return cmd
}

func togglePriority(m *tui.Model) {
	task, ok := m.CurrentTask()
	if !ok {
		return
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	if _, err := m.Store.TogglePriority(ctx, task.ID); err != nil {
		slog.Error("Error toggling priority", "task", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, userMessage(err))
	}
}

func undoDelete(m *tui.Model) tea.Cmd {
	if !m.UndoState.Visible() {
		return nil
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	task, err := m.Store.UndoDelete(ctx)
	m.UndoState.Hide()
	if err != nil {
		slog.Error("Error restoring task", "error", err)
		m.NotificationState.Add(state.LevelError, userMessage(err))
		return nil
	}
	if task == nil {
		m.NotificationState.Add(state.LevelInfo, "Nothing to undo")
		return nil
	}
	m.SelectTask(task.ID)
	return nil
}
