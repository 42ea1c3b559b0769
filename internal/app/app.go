package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/database"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	repo *database.Repository
	now  func() time.Time

	Config *config.Config
	Logger *slog.Logger

	// Service layer
	Tasks *taskservice.Store

	// LoadErr is set when the saved list could not be read. The store then
	// starts empty and the UI reports the problem instead of exiting.
	LoadErr error
}

// New opens the database named by cfg, builds the task store and loads the
// saved list. A nil cfg means config.Default().
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	ac := appConfig{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&ac)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	repo := database.NewRepository(db)

	storeOpts := []taskservice.Option{
		taskservice.WithUndoWindow(cfg.UndoWindow),
		taskservice.WithCategoryColors(cfg.CategoryColor),
		taskservice.WithLogger(ac.logger),
	}
	if ac.now == nil {
		ac.now = time.Now
	}
	storeOpts = append(storeOpts, taskservice.WithClock(ac.now))

	a := &App{
		repo:   repo,
		now:    ac.now,
		Config: cfg,
		Logger: ac.logger,
		Tasks:  taskservice.NewStore(repo, storeOpts...),
	}

	if _, err := a.Tasks.Load(ctx); err != nil {
		a.Logger.Error("failed to load tasks", "error", err)
		a.LoadErr = err
	}
	return a, nil
}

// Now reads the app clock
func (a *App) Now() time.Time {
	return a.now()
}

// Repo returns the underlying key/value repository
func (a *App) Repo() database.KeyValueStore {
	return a.repo
}

// Close releases the database
func (a *App) Close() error {
	return a.repo.Close()
}
