package handlers

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// userErrors are shown to the user with their own message
var userErrors = []error{
	taskservice.ErrEmptyText,
	taskservice.ErrInvalidCategory,
	taskservice.ErrInvalidDueDate,
	taskservice.ErrInvalidTaskID,
	taskservice.ErrPhotoNotImage,
	taskservice.ErrPhotoTooLarge,
	taskservice.ErrPhotoRead,
	taskservice.ErrTaskNotFound,
	taskservice.ErrStorageWrite,
	taskservice.ErrStorageRead,
}

// userMessage strips wrapping context from store errors
func userMessage(err error) string {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return capitalize(target.Error())
		}
	}
	return "Something went wrong"
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// rejectRequest reports a request that failed validation before any file read
func rejectRequest(m *tui.Model, err error) {
	slog.Warn("Task rejected", "error", err)
	m.NotificationState.Add(state.LevelError, userMessage(err))
}

// startPhotoRead reads path in the background. The mutation resumes when the
// result arrives; only one read may run at a time.
func startPhotoRead(m *tui.Model, pending *tui.PendingMutation, path string) tea.Cmd {
	seq, ok := m.LoadingState.Start("Reading photo")
	if !ok {
		m.NotificationState.Add(state.LevelWarning, "A photo is already loading")
		return nil
	}
	m.Pending = pending
	return tea.Batch(tui.ReadPhotoCmd(m.Ctx, seq, path), m.Spinner.Tick)
}

// handlePhotoRead finishes the mutation waiting on a photo
func handlePhotoRead(m *tui.Model, msg tui.PhotoReadMsg) tea.Cmd {
	if !m.LoadingState.Finish(msg.Seq) {
		return nil
	}
	pending := m.Pending
	m.Pending = nil
	if pending == nil {
		return nil
	}

	if msg.Err != nil {
		slog.Warn("Photo rejected", "error", msg.Err)
		m.NotificationState.Add(state.LevelError, userMessage(msg.Err))
		return nil
	}

	switch {
	case pending.Create != nil:
		req := *pending.Create
		req.Photo = msg.Photo
		commitCreate(m, req)
	case pending.Update != nil:
		req := *pending.Update
		req.Photo = msg.Photo
		commitUpdate(m, req)
	}
	return nil
}

func commitCreate(m *tui.Model, req taskservice.CreateTaskRequest) {
	ctx, cancel := m.DbContext()
	defer cancel()
	task, err := m.Store.Create(ctx, req)
	if err != nil {
		slog.Error("Error creating task", "error", err)
		m.NotificationState.Add(state.LevelError, userMessage(err))
		return
	}
	m.SelectTask(task.ID)
}

// commitUpdate saves the edit row. On failure the row stays open so the user
// can correct it.
func commitUpdate(m *tui.Model, req taskservice.UpdateTaskRequest) {
	ctx, cancel := m.DbContext()
	defer cancel()
	task, err := m.Store.Update(ctx, req)
	if err != nil {
		slog.Error("Error updating task", "task", req.ID, "error", err)
		m.NotificationState.Add(state.LevelError, userMessage(err))
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			endEdit(m)
		}
		return
	}
	if m.EditState != nil && m.EditState.TaskID() == task.ID {
		endEdit(m)
	}
	m.SelectTask(task.ID)
}
