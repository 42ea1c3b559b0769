package state

import (
	"testing"

	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/view"
)

func TestUIState_ClampAndScroll(t *testing.T) {
	s := NewUIState()
	s.SetSelectedRow(7)
	s.ClampSelection(3)
	if s.SelectedRow() != 2 {
		t.Errorf("SelectedRow() = %d, want 2", s.SelectedRow())
	}

	s.ClampSelection(0)
	if s.SelectedRow() != 0 {
		t.Errorf("SelectedRow() on empty list = %d, want 0", s.SelectedRow())
	}

	s.SetSelectedRow(10)
	s.EnsureVisible(4)
	if s.ScrollOffset() != 7 {
		t.Errorf("ScrollOffset() = %d, want 7", s.ScrollOffset())
	}
	s.SetSelectedRow(2)
	s.EnsureVisible(4)
	if s.ScrollOffset() != 2 {
		t.Errorf("ScrollOffset() = %d, want 2", s.ScrollOffset())
	}
}

func TestViewState_DebounceOnlyLatestCommits(t *testing.T) {
	s := NewViewState()

	first := s.CycleFilter()  // Work
	second := s.CycleFilter() // Personal
	sortSeq := s.ToggleSort() // asc

	if s.Filter() != view.FilterAll {
		t.Errorf("Filter applied before debounce: %s", s.Filter())
	}
	if !s.Dirty() {
		t.Error("Dirty() = false with pending changes")
	}

	if s.Commit(first) || s.Commit(second) {
		t.Error("stale debounce tick was applied")
	}
	if !s.Commit(sortSeq) {
		t.Fatal("latest debounce tick was not applied")
	}

	cfg := s.Config()
	if cfg.Category != string(models.CategoryPersonal) {
		t.Errorf("Category = %s, want Personal", cfg.Category)
	}
	if cfg.Sort != view.SortAsc {
		t.Errorf("Sort = %v, want asc", cfg.Sort)
	}
	if s.Dirty() {
		t.Error("Dirty() = true after commit")
	}
}

func TestUndoState_ExpiryIgnoresStaleTicks(t *testing.T) {
	s := NewUndoState()
	first := s.Show(models.Task{Text: "one"})
	second := s.Show(models.Task{Text: "two"})

	if s.Expire(first) {
		t.Error("stale expiry hid the newer toast")
	}
	if !s.Visible() {
		t.Fatal("toast should still be visible")
	}
	if s.Task().Text != "two" {
		t.Errorf("Task().Text = %s, want two", s.Task().Text)
	}
	if !s.Expire(second) || s.Visible() {
		t.Error("latest expiry should hide the toast")
	}
}

func TestLoadingState_SingleReadInFlight(t *testing.T) {
	s := NewLoadingState()
	seq, ok := s.Start("reading cat.png")
	if !ok {
		t.Fatal("first Start() refused")
	}
	if _, ok := s.Start("again"); ok {
		t.Error("second Start() accepted while a read is in flight")
	}
	if s.Finish(seq + 1) {
		t.Error("Finish() accepted an unknown tag")
	}
	if !s.Finish(seq) || s.InFlight() {
		t.Error("Finish() did not end the read")
	}
}

func TestEditState_FocusAndValues(t *testing.T) {
	task := models.Task{
		ID:            "t1",
		Text:          "write report",
		Category:      models.CategoryWork,
		CategoryColor: "#4fb9ff",
		FontColor:     "#000000",
		DueDate:       "2024-02-02",
	}
	s, _ := NewEditState(task)

	if s.Focus() != FieldText {
		t.Errorf("initial focus = %v, want FieldText", s.Focus())
	}

	s.FocusPrev()
	if s.Focus() != FieldCategory {
		t.Errorf("focus after FocusPrev = %v, want FieldCategory", s.Focus())
	}
	s.CycleCategory(1)
	if s.Category() != models.CategoryPersonal {
		t.Errorf("Category() = %s, want Personal", s.Category())
	}
	s.CycleCategory(-1)
	s.CycleCategory(-1)
	if s.Category() != models.CategoryOther {
		t.Errorf("Category() = %s, want Other", s.Category())
	}

	s.FocusPrev()
	if s.Focus() != FieldPhoto {
		t.Errorf("focus should wrap to FieldPhoto, got %v", s.Focus())
	}

	s.SetValue(FieldText, "write final report")
	s.SetValue(FieldPhoto, RemovePhotoValue)
	v := s.Values()
	if v.TaskID != "t1" || v.Text != "write final report" || v.Category != models.CategoryOther {
		t.Errorf("Values() = %+v", v)
	}
	if v.DueDate != "2024-02-02" || v.CategoryColor != "#4fb9ff" {
		t.Errorf("Values() lost prefilled fields: %+v", v)
	}
	if !v.RemovePhoto || v.PhotoPath != "" {
		t.Errorf("photo removal not recognized: %+v", v)
	}
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	if s.HasAny() {
		t.Fatal("new state has notifications")
	}
	s.Add(LevelInfo, "saved")
	s.Add(LevelError, "disk full")

	latest, ok := s.Latest()
	if !ok || latest.Level != LevelError || latest.Message != "disk full" {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}
	s.Clear()
	if s.HasAny() {
		t.Error("Clear() left notifications")
	}
}
