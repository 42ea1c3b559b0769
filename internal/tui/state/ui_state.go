package state

import "github.com/thenoetrevino/jot/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddFormMode                   // Adding a task with the huh form
	EditMode                      // Inline edit row for one task
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
)

// String returns a short label for the status bar
func (m Mode) String() string {
	switch m {
	case AddFormMode:
		return "ADD"
	case EditMode:
		return "EDIT"
	case DeleteConfirmMode:
		return "DELETE"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes row selection, scrolling, terminal dimensions and the
// current interaction mode.
type UIState struct {
	// selectedRow is the index of the selected row in the projected list
	selectedRow int

	// scrollOffset is the index of the first visible row
	scrollOffset int

	width  int
	height int

	mode Mode

	// pendingDeleteID is the task awaiting delete confirmation
	pendingDeleteID models.TaskID
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedRow returns the index of the selected row.
func (s *UIState) SelectedRow() int {
	return s.selectedRow
}

// SetSelectedRow updates the selected row index.
func (s *UIState) SetSelectedRow(index int) {
	s.selectedRow = max(index, 0)
}

// ClampSelection keeps the selection inside a list of n rows.
func (s *UIState) ClampSelection(n int) {
	if n == 0 {
		s.selectedRow = 0
		return
	}
	s.selectedRow = min(max(s.selectedRow, 0), n-1)
}

// ScrollOffset returns the first visible row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// SetScrollOffset sets the first visible row.
func (s *UIState) SetScrollOffset(offset int) {
	s.scrollOffset = max(offset, 0)
}

// EnsureVisible scrolls so the selected row is inside a window of visible rows.
func (s *UIState) EnsureVisible(visible int) {
	if visible < 1 {
		visible = 1
	}
	if s.selectedRow < s.scrollOffset {
		s.scrollOffset = s.selectedRow
	}
	if s.selectedRow >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedRow - visible + 1
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// PendingDeleteID returns the task awaiting confirmation.
func (s *UIState) PendingDeleteID() models.TaskID {
	return s.pendingDeleteID
}

// SetPendingDeleteID records the task awaiting confirmation.
func (s *UIState) SetPendingDeleteID(id models.TaskID) {
	s.pendingDeleteID = id
}
