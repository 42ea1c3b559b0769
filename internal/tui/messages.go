package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jot/internal/models"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
)

// DebounceMsg fires after the debounce delay for a filter or sort change
type DebounceMsg struct {
	Seq int
}

// UndoExpiredMsg fires when the undo toast should disappear
type UndoExpiredMsg struct {
	Seq int
}

// PhotoReadMsg carries the result of an asynchronous photo read
type PhotoReadMsg struct {
	Seq   int
	Photo *models.Photo
	Err   error
}

// DebounceCmd waits delay and reports seq
func DebounceCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return DebounceMsg{Seq: seq}
	})
}

// UndoExpiryCmd waits the undo window and reports seq
func UndoExpiryCmd(window time.Duration, seq int) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return UndoExpiredMsg{Seq: seq}
	})
}

// ReadPhotoCmd reads path off the update loop
func ReadPhotoCmd(ctx context.Context, seq int, path string) tea.Cmd {
	return func() tea.Msg {
		photo, err := taskservice.ReadPhoto(ctx, path)
		return PhotoReadMsg{Seq: seq, Photo: photo, Err: err}
	}
}
