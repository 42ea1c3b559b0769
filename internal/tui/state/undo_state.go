package state

import "github.com/thenoetrevino/jot/internal/models"

// UndoState drives the undo toast shown after a deletion. The store enforces
// the undo window itself; the toast only mirrors it on screen.
type UndoState struct {
	visible bool
	task    models.Task
	seq     int
}

// NewUndoState creates a hidden toast.
func NewUndoState() *UndoState {
	return &UndoState{}
}

// Show displays the toast for task and returns the tag of its expiry tick.
func (s *UndoState) Show(task models.Task) int {
	s.visible = true
	s.task = task
	s.seq++
	return s.seq
}

// Expire hides the toast if seq belongs to the latest Show.
func (s *UndoState) Expire(seq int) bool {
	if seq != s.seq || !s.visible {
		return false
	}
	s.visible = false
	return true
}

// Hide hides the toast unconditionally.
func (s *UndoState) Hide() {
	s.visible = false
}

// Visible reports whether the toast is on screen.
func (s *UndoState) Visible() bool {
	return s.visible
}

// Task returns the task the toast refers to.
func (s *UndoState) Task() models.Task {
	return s.task
}
