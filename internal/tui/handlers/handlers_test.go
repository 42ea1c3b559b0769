package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/testutil"
	"github.com/thenoetrevino/jot/internal/tui"
	"github.com/thenoetrevino/jot/internal/tui/state"
	"github.com/thenoetrevino/jot/internal/view"
)

func setupModel(t *testing.T) *tui.Model {
	t.Helper()
	a := testutil.SetupTestApp(t)
	m := tui.InitialModel(context.Background(), a.Tasks, a.Config, nil)
	m.Now = func() time.Time { return testutil.FixedNow }
	return &m
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func press(m *tui.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		cmd = Update(m, msg)
	}
	return cmd
}

func texts(m *tui.Model) []string {
	var out []string
	for _, r := range m.Rows() {
		out = append(out, r.Task.Text)
	}
	return out
}

func writePNG(t *testing.T, n int) string {
	t.Helper()
	data := make([]byte, n)
	copy(data, "\x89PNG\r\n\x1a\n")
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// ============================================================================
// NORMAL MODE
// ============================================================================

func TestNavigation_ClampsToRows(t *testing.T) {
	m := setupModel(t)
	for _, s := range []string{"one", "two", "three"} {
		testutil.CreateTestTask(t, m.Store, s, models.CategoryWork)
	}

	press(m, key("j"), key("j"), key("j"), key("j"))
	assert.Equal(t, 2, m.UiState.SelectedRow())

	press(m, key("k"))
	task, ok := m.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "two", task.Text)

	press(m, special(tea.KeyUp), special(tea.KeyUp))
	assert.Equal(t, 0, m.UiState.SelectedRow())
}

func TestTogglePriority(t *testing.T) {
	m := setupModel(t)
	task := testutil.CreateTestTask(t, m.Store, "rank me", models.CategoryWork)

	press(m, key("p"))
	got, _ := m.Store.Get(task.ID)
	assert.Equal(t, models.PriorityHigh, got.Priority)

	press(m, key("p"), key("p"))
	got, _ = m.Store.Get(task.ID)
	assert.Equal(t, models.PriorityNormal, got.Priority)
}

func TestHelpMode(t *testing.T) {
	m := setupModel(t)

	press(m, key("?"))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	press(m, key("a"))
	assert.Equal(t, state.HelpMode, m.UiState.Mode(), "other keys are ignored in help")

	press(m, special(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuitAndCancelledContext(t *testing.T) {
	m := setupModel(t)

	cmd := press(m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	ctx, cancel := context.WithCancel(context.Background())
	m.Ctx = ctx
	cancel()
	cmd = press(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m := setupModel(t)
	press(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.UiState.Width())
	assert.Equal(t, 40, m.UiState.Height())
}

// ============================================================================
// FILTER / SORT DEBOUNCE
// ============================================================================

func TestFilter_AppliesAfterLatestDebounce(t *testing.T) {
	m := setupModel(t)
	testutil.CreateTestTask(t, m.Store, "job", models.CategoryWork)
	testutil.CreateTestTask(t, m.Store, "home", models.CategoryPersonal)

	require.NotNil(t, press(m, key("f")))
	require.NotNil(t, press(m, key("f")))
	assert.Equal(t, view.FilterAll, m.ViewState.Filter(), "nothing applies before the delay")
	assert.Equal(t, "Personal", m.ViewState.PendingFilter())

	press(m, tui.DebounceMsg{Seq: 1})
	assert.Equal(t, view.FilterAll, m.ViewState.Filter(), "stale tick is ignored")

	press(m, tui.DebounceMsg{Seq: 2})
	assert.Equal(t, "Personal", m.ViewState.Filter())
	assert.Equal(t, []string{"home"}, texts(m))
}

func TestSort_TogglesAfterDebounce(t *testing.T) {
	m := setupModel(t)
	testutil.CreateTestTaskDue(t, m.Store, "late", models.CategoryWork, "2024-06-01")
	testutil.CreateTestTaskDue(t, m.Store, "none", models.CategoryWork, "")
	testutil.CreateTestTaskDue(t, m.Store, "early", models.CategoryWork, "2024-04-01")

	assert.Equal(t, []string{"late", "none", "early"}, texts(m))

	press(m, key("s"), tui.DebounceMsg{Seq: 1})
	assert.Equal(t, view.SortAsc, m.ViewState.Sort())
	assert.Equal(t, []string{"early", "late", "none"}, texts(m))

	press(m, key("s"), tui.DebounceMsg{Seq: 2})
	assert.Equal(t, []string{"late", "early", "none"}, texts(m))
}

// ============================================================================
// DELETE / UNDO
// ============================================================================

func TestDelete_ConfirmAndUndo(t *testing.T) {
	m := setupModel(t)
	testutil.CreateTestTask(t, m.Store, "first", models.CategoryWork)
	testutil.CreateTestTask(t, m.Store, "second", models.CategoryWork)
	testutil.CreateTestTask(t, m.Store, "third", models.CategoryWork)

	press(m, key("d"))
	assert.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	press(m, key("n"))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.Store.Tasks(), 3)

	cmd := press(m, key("d"), key("y"))
	require.NotNil(t, cmd, "undo expiry tick scheduled")
	assert.Equal(t, []string{"second", "third"}, texts(m))
	assert.True(t, m.UndoState.Visible())
	assert.Equal(t, "first", m.UndoState.Task().Text)

	press(m, key("u"))
	assert.False(t, m.UndoState.Visible())
	assert.Equal(t, []string{"second", "third", "first"}, texts(m), "restored at the end")
	task, _ := m.CurrentTask()
	assert.Equal(t, "first", task.Text, "cursor follows the restored task")
}

func TestUndoToast_Expires(t *testing.T) {
	m := setupModel(t)
	testutil.CreateTestTask(t, m.Store, "a", models.CategoryWork)
	testutil.CreateTestTask(t, m.Store, "b", models.CategoryWork)

	press(m, key("d"), key("y"))
	press(m, key("d"), key("y"))
	require.True(t, m.UndoState.Visible())

	press(m, tui.UndoExpiredMsg{Seq: 1})
	assert.True(t, m.UndoState.Visible(), "expiry of an older toast is ignored")

	press(m, tui.UndoExpiredMsg{Seq: 2})
	assert.False(t, m.UndoState.Visible())

	press(m, key("u"))
	assert.Empty(t, m.Store.Tasks(), "undo is unavailable once the toast is gone")
}

// ============================================================================
// ADD FORM
// ============================================================================

func TestAddForm_OpenDefaultsAndCancel(t *testing.T) {
	m := setupModel(t)
	press(m, key("f"), key("f"), tui.DebounceMsg{Seq: 2})

	press(m, key("a"))
	assert.Equal(t, state.AddFormMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.AddForm)
	assert.Equal(t, "2024-03-01", m.FormState.Values.DueDate)
	assert.Equal(t, "Personal", m.FormState.Values.Category, "category follows the filter")

	press(m, special(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.FormState.AddForm)
	assert.Empty(t, m.Store.Tasks())
}

func TestSubmitAddForm(t *testing.T) {
	m := setupModel(t)

	cmd := submitAddForm(m, state.AddFormValues{
		Text:      "  from form ",
		Category:  "Other",
		DueDate:   "",
		FontColor: "blue",
	})
	assert.Nil(t, cmd)

	tasks := m.Store.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "from form", tasks[0].Text)
	assert.Equal(t, models.CategoryOther, tasks[0].Category)
	assert.Empty(t, tasks[0].DueDate, "cleared date means no due date")
	assert.Equal(t, "#0000ff", tasks[0].FontColor)
}

func TestSubmitAddForm_ValidationNotifies(t *testing.T) {
	m := setupModel(t)

	submitAddForm(m, state.AddFormValues{Text: "   ", Category: "Work"})
	assert.Empty(t, m.Store.Tasks())
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
}

func TestSubmitAddForm_WithPhoto(t *testing.T) {
	m := setupModel(t)
	path := writePNG(t, 256)

	cmd := submitAddForm(m, state.AddFormValues{Text: "pic", Category: "Work", PhotoPath: path})
	require.NotNil(t, cmd)
	assert.True(t, m.LoadingState.InFlight())
	assert.Empty(t, m.Store.Tasks(), "nothing stored until the read finishes")

	// a second submission while reading is refused
	assert.Nil(t, submitAddForm(m, state.AddFormValues{Text: "other", Category: "Work", PhotoPath: path}))
	n, _ := m.NotificationState.Latest()
	assert.Equal(t, state.LevelWarning, n.Level)

	press(m, tui.ReadPhotoCmd(context.Background(), 1, path)())
	assert.False(t, m.LoadingState.InFlight())
	tasks := m.Store.Tasks()
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Photo)
	assert.Equal(t, 256, tasks[0].Photo.Size())
}

func TestSubmitAddForm_InvalidSkipsPhotoRead(t *testing.T) {
	m := setupModel(t)

	cmd := submitAddForm(m, state.AddFormValues{Text: "", Category: "Work", PhotoPath: writePNG(t, 64)})
	assert.Nil(t, cmd)
	assert.False(t, m.LoadingState.InFlight())
	assert.Nil(t, m.Pending)
	assert.Empty(t, m.Store.Tasks())
	assert.True(t, m.NotificationState.HasAny())
}

func TestPhotoRead_RejectedLeavesListUnchanged(t *testing.T) {
	m := setupModel(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image at all"), 0o644))

	require.NotNil(t, submitAddForm(m, state.AddFormValues{Text: "pic", Category: "Work", PhotoPath: path}))
	press(m, tui.ReadPhotoCmd(context.Background(), 1, path)())

	assert.Empty(t, m.Store.Tasks())
	assert.Nil(t, m.Pending)
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
}

func TestPhotoRead_StaleResultIgnored(t *testing.T) {
	m := setupModel(t)
	press(m, tui.PhotoReadMsg{Seq: 7, Photo: models.NewPhoto([]byte("\x89PNG\r\n\x1a\n"))})
	assert.Empty(t, m.Store.Tasks())
	assert.False(t, m.NotificationState.HasAny())
}

// ============================================================================
// EDIT ROW
// ============================================================================

func TestEdit_SaveChanges(t *testing.T) {
	m := setupModel(t)
	task := testutil.CreateTestTaskDue(t, m.Store, "draft", models.CategoryWork, "2024-03-05")

	press(m, key("e"))
	require.Equal(t, state.EditMode, m.UiState.Mode())
	require.NotNil(t, m.EditState)
	assert.Equal(t, task.ID, m.ViewState.EditID())

	rows := m.Rows()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Editing)

	m.EditState.SetValue(state.FieldText, "final")
	m.EditState.SetValue(state.FieldDueDate, "")
	press(m, tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl})

	press(m, special(tea.KeyEnter))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.EditState)
	assert.Empty(t, m.ViewState.EditID())

	got, _ := m.Store.Get(task.ID)
	assert.Equal(t, "final", got.Text)
	assert.Empty(t, got.DueDate)
	assert.Equal(t, models.CategoryPersonal, got.Category)
}

func TestEdit_EscCancels(t *testing.T) {
	m := setupModel(t)
	task := testutil.CreateTestTask(t, m.Store, "keep me", models.CategoryWork)

	press(m, special(tea.KeyEnter))
	require.Equal(t, state.EditMode, m.UiState.Mode())
	m.EditState.SetValue(state.FieldText, "discard")

	press(m, special(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	got, _ := m.Store.Get(task.ID)
	assert.Equal(t, task, got)
}

func TestEdit_InvalidStaysOpen(t *testing.T) {
	m := setupModel(t)
	task := testutil.CreateTestTask(t, m.Store, "valid", models.CategoryWork)

	press(m, key("e"))
	m.EditState.SetValue(state.FieldDueDate, "03/01/2024")
	press(m, special(tea.KeyEnter))

	assert.Equal(t, state.EditMode, m.UiState.Mode(), "row stays open for correction")
	assert.True(t, m.NotificationState.HasAny())
	got, _ := m.Store.Get(task.ID)
	assert.Equal(t, task.DueDate, got.DueDate)
}

func TestEdit_InvalidFieldsSkipPhotoRead(t *testing.T) {
	m := setupModel(t)
	task := testutil.CreateTestTask(t, m.Store, "valid", models.CategoryWork)

	press(m, key("e"))
	m.EditState.SetValue(state.FieldText, "   ")
	m.EditState.SetValue(state.FieldPhoto, writePNG(t, 64))
	cmd := press(m, special(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, m.LoadingState.InFlight(), "no spinner for a request that cannot succeed")
	assert.Nil(t, m.Pending)
	assert.Equal(t, state.EditMode, m.UiState.Mode())
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	got, _ := m.Store.Get(task.ID)
	assert.Equal(t, task, got)
}

func TestEdit_FocusAndCategoryKeys(t *testing.T) {
	m := setupModel(t)
	testutil.CreateTestTask(t, m.Store, "x", models.CategoryWork)

	press(m, key("e"))
	assert.Equal(t, state.FieldText, m.EditState.Focus())

	press(m, special(tea.KeyTab))
	assert.Equal(t, state.FieldCategoryColor, m.EditState.Focus())

	press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, state.FieldCategory, m.EditState.Focus())

	press(m, special(tea.KeyLeft))
	assert.Equal(t, models.CategoryOther, m.EditState.Category(), "left wraps from Work to Other")
}

func TestEdit_PhotoReplaceAndRemove(t *testing.T) {
	m := setupModel(t)
	task := testutil.CreateTestTask(t, m.Store, "pic", models.CategoryWork)
	path := writePNG(t, 64)

	press(m, key("e"))
	m.EditState.SetValue(state.FieldPhoto, path)
	cmd := press(m, special(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, state.EditMode, m.UiState.Mode(), "row stays open while reading")

	press(m, tui.ReadPhotoCmd(context.Background(), 1, path)())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	got, _ := m.Store.Get(task.ID)
	require.NotNil(t, got.Photo)

	press(m, key("e"))
	m.EditState.SetValue(state.FieldPhoto, state.RemovePhotoValue)
	press(m, special(tea.KeyEnter))
	got, _ = m.Store.Get(task.ID)
	assert.Nil(t, got.Photo)
}

func TestEdit_EscAbandonsPhotoRead(t *testing.T) {
	m := setupModel(t)
	task := testutil.CreateTestTask(t, m.Store, "pic", models.CategoryWork)
	path := writePNG(t, 64)

	press(m, key("e"))
	m.EditState.SetValue(state.FieldPhoto, path)
	press(m, special(tea.KeyEnter))
	press(m, special(tea.KeyEscape))
	assert.Nil(t, m.Pending)

	press(m, tui.ReadPhotoCmd(context.Background(), 1, path)())
	got, _ := m.Store.Get(task.ID)
	assert.Nil(t, got.Photo, "abandoned read does not save")
	assert.False(t, m.LoadingState.InFlight())
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Something went wrong", userMessage(assert.AnError))
	assert.Equal(t, "Abc", capitalize("abc"))
	assert.Equal(t, "", capitalize(""))
}
