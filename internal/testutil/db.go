// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/jot/internal/app"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/logging"
	"github.com/thenoetrevino/jot/internal/models"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
)

// FixedNow is the clock used by SetupTestApp
var FixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

// TestConfig returns the default config with the database in a temp dir
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "jot.db")
	return cfg
}

// SetupTestApp opens an App on a fresh database file with a fixed clock.
// The App is closed when the test ends.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()
	return SetupTestAppWithConfig(t, TestConfig(t))
}

// SetupTestAppWithConfig is SetupTestApp with a caller supplied config
func SetupTestAppWithConfig(t *testing.T, cfg *config.Config) *app.App {
	t.Helper()

	a, err := app.New(context.Background(), cfg,
		app.WithLogger(logging.Discard()),
		app.WithClock(func() time.Time { return FixedNow }),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Logf("Warning: failed to close test app: %v", err)
		}
	})
	return a
}

// CreateTestTask adds a task through the store and returns it
func CreateTestTask(t *testing.T, store *taskservice.Store, text string, category models.Category) models.Task {
	t.Helper()

	task, err := store.Create(context.Background(), taskservice.CreateTaskRequest{
		Text:     text,
		Category: category,
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return *task
}

// CreateTestTaskDue adds a task with the given due date ("" for none)
func CreateTestTaskDue(t *testing.T, store *taskservice.Store, text string, category models.Category, due string) models.Task {
	t.Helper()

	task, err := store.Create(context.Background(), taskservice.CreateTaskRequest{
		Text:      text,
		Category:  category,
		DueDate:   due,
		NoDueDate: due == "",
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return *task
}
