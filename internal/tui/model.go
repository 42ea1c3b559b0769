package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/models"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
	"github.com/thenoetrevino/jot/internal/tui/components"
	"github.com/thenoetrevino/jot/internal/tui/state"
	"github.com/thenoetrevino/jot/internal/view"
)

// dbTimeout bounds every store call made from the UI
const dbTimeout = 5 * time.Second

// PendingMutation is a create or update waiting on a photo read. Exactly one
// of the two requests is set.
type PendingMutation struct {
	Create *taskservice.CreateTaskRequest
	Update *taskservice.UpdateTaskRequest
}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Store  *taskservice.Store
	Config *config.Config

	UiState           *state.UIState
	ViewState         *state.ViewState
	FormState         *state.FormState
	EditState         *state.EditState // nil outside EditMode
	UndoState         *state.UndoState
	LoadingState      *state.LoadingState
	NotificationState *state.NotificationState

	Spinner spinner.Model

	// Pending is the mutation that resumes when the photo read finishes
	Pending *PendingMutation

	// Now is the clock used for form defaults
	Now func() time.Time
}

// InitialModel creates the TUI model around an already loaded store. A
// non-nil loadErr is shown as the first notification.
func InitialModel(ctx context.Context, store *taskservice.Store, cfg *config.Config, loadErr error) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		Store:             store,
		Config:            cfg,
		UiState:           state.NewUIState(),
		ViewState:         state.NewViewState(),
		FormState:         state.NewFormState(),
		UndoState:         state.NewUndoState(),
		LoadingState:      state.NewLoadingState(),
		NotificationState: state.NewNotificationState(),
		Spinner:           spinner.New(spinner.WithSpinner(spinner.Dot)),
		Now:               time.Now,
	}

	if loadErr != nil {
		m.NotificationState.Add(state.LevelError, "Could not load saved tasks, starting empty")
	}
	return m
}

// DbContext returns a context for store calls
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// Rows returns the current projection of the store
func (m *Model) Rows() []view.Row {
	return view.Project(m.Store.Tasks(), m.ViewState.Config())
}

// CurrentTask returns the task under the cursor
func (m *Model) CurrentTask() (models.Task, bool) {
	rows := m.Rows()
	m.UiState.ClampSelection(len(rows))
	if len(rows) == 0 {
		return models.Task{}, false
	}
	return rows[m.UiState.SelectedRow()].Task, true
}

// SelectTask moves the cursor onto id if it is visible
func (m *Model) SelectTask(id models.TaskID) {
	for i, r := range m.Rows() {
		if r.Task.ID == id {
			m.UiState.SetSelectedRow(i)
			return
		}
	}
}

// DefaultCategory is the category preselected in the add form: the filtered
// category, or Work when showing all
func (m *Model) DefaultCategory() models.Category {
	if c := models.Category(m.ViewState.Filter()); c.Valid() {
		return c
	}
	return models.CategoryWork
}
