package state

import (
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/view"
)

// ViewState holds the filter and sort settings the list is projected
// through. Filter and sort key presses first change the pending values;
// Commit copies them to the applied values once the debounce delay passes
// without further input.
type ViewState struct {
	filter string
	sort   view.SortDirection

	pendingFilter string
	pendingSort   view.SortDirection

	editID models.TaskID

	// seq tags debounce ticks; only the tick carrying the latest value applies
	seq int
}

// NewViewState starts with every category shown in insertion order.
func NewViewState() *ViewState {
	return &ViewState{
		filter:        view.FilterAll,
		pendingFilter: view.FilterAll,
	}
}

// Config returns the applied projection settings.
func (s *ViewState) Config() view.Config {
	return view.Config{Category: s.filter, Sort: s.sort, EditID: s.editID}
}

// Filter returns the applied category filter.
func (s *ViewState) Filter() string {
	return s.filter
}

// Sort returns the applied sort direction.
func (s *ViewState) Sort() view.SortDirection {
	return s.sort
}

// PendingFilter returns the filter that will apply after the debounce delay.
func (s *ViewState) PendingFilter() string {
	return s.pendingFilter
}

// PendingSort returns the sort that will apply after the debounce delay.
func (s *ViewState) PendingSort() view.SortDirection {
	return s.pendingSort
}

// Dirty reports whether pending settings differ from the applied ones.
func (s *ViewState) Dirty() bool {
	return s.pendingFilter != s.filter || s.pendingSort != s.sort
}

// CycleFilter advances the pending filter and returns the new debounce tag.
func (s *ViewState) CycleFilter() int {
	s.pendingFilter = view.NextFilter(s.pendingFilter)
	s.seq++
	return s.seq
}

// ToggleSort flips the pending sort and returns the new debounce tag.
func (s *ViewState) ToggleSort() int {
	s.pendingSort = s.pendingSort.Toggle()
	s.seq++
	return s.seq
}

// Commit applies the pending settings if seq is the latest tag. Stale tags
// are ignored and Commit reports false.
func (s *ViewState) Commit(seq int) bool {
	if seq != s.seq {
		return false
	}
	s.filter = s.pendingFilter
	s.sort = s.pendingSort
	return true
}

// EditID returns the task shown as the edit row, if any.
func (s *ViewState) EditID() models.TaskID {
	return s.editID
}

// SetEditID makes id the only task in edit mode. Empty ends edit mode.
func (s *ViewState) SetEditID(id models.TaskID) {
	s.editID = id
}
