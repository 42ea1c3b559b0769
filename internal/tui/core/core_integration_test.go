package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/testutil"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// TestAppImplementsTeaModel verifies App implements tea.Model interface
func TestAppImplementsTeaModel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a := testutil.SetupTestApp(t)
	app := New(ctx, a.Tasks, a.Config, nil)

	var _ tea.Model = app
	if cmd := app.Init(); cmd != nil {
		t.Fatal("Init() should not schedule anything")
	}
}

// TestAppView tests the View method before and after the first resize
func TestAppView(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a := testutil.SetupTestApp(t)
	testutil.CreateTestTask(t, a.Tasks, "Test Task", models.CategoryWork)
	app := New(ctx, a.Tasks, a.Config, nil)

	if got := app.View().Content; got != "Loading..." {
		t.Errorf("View before resize = %q, want Loading...", got)
	}

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := model.View()
	if !view.AltScreen {
		t.Error("View should use the alternate screen")
	}
	if !strings.Contains(ansi.Strip(view.Content), "Test Task") {
		t.Errorf("View should list the task, got:\n%s", ansi.Strip(view.Content))
	}
}

// TestAppStatePreservation tests that App preserves model state across updates
func TestAppStatePreservation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a := testutil.SetupTestApp(t)
	testutil.CreateTestTask(t, a.Tasks, "first", models.CategoryWork)
	testutil.CreateTestTask(t, a.Tasks, "second", models.CategoryWork)
	app := New(ctx, a.Tasks, a.Config, nil)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, _ = model.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
	app2 := model.(*App)

	if got := app2.GetModel().UiState.SelectedRow(); got != 1 {
		t.Errorf("SelectedRow = %d, want 1", got)
	}

	model, _ = model.Update(tea.KeyPressMsg(tea.Key{Text: "?", Code: '?'}))
	if mode := model.(*App).GetModel().UiState.Mode(); mode != state.HelpMode {
		t.Errorf("Mode = %v, want HelpMode", mode)
	}
	if model.View().Content == "" {
		t.Fatal("help overlay should render")
	}
}

// TestAppLoadError surfaces a failed load as a notification
func TestAppLoadError(t *testing.T) {
	a := testutil.SetupTestApp(t)
	app := New(context.Background(), a.Tasks, a.Config, errors.New("corrupt"))

	n, ok := app.GetModel().NotificationState.Latest()
	if !ok {
		t.Fatal("expected a notification for the load error")
	}
	if n.Level != state.LevelError {
		t.Errorf("Level = %v, want LevelError", n.Level)
	}
}
