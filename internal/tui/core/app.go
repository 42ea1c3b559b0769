// Package core wires the model, the handlers and the renderer into a
// tea.Model.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jot/internal/config"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/handlers"
	"github.com/thenoetrevino/jot/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, store *taskservice.Store, cfg *config.Config, loadErr error) *App {
	model := tui.InitialModel(ctx, store, cfg, loadErr)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
