package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jot/internal/models"
)

// EditField identifies one control of the inline edit row
type EditField int

const (
	FieldCategory EditField = iota // cycled with left/right, not typed
	FieldText
	FieldCategoryColor
	FieldDueDate
	FieldFontColor
	FieldPhoto
	fieldCount
)

// Label returns the field's caption in the edit row
func (f EditField) Label() string {
	switch f {
	case FieldCategory:
		return "Category"
	case FieldText:
		return "Text"
	case FieldCategoryColor:
		return "Color"
	case FieldDueDate:
		return "Due"
	case FieldFontColor:
		return "Font"
	case FieldPhoto:
		return "Photo"
	}
	return ""
}

// EditFields lists the controls in focus order
var EditFields = []EditField{
	FieldCategory, FieldText, FieldCategoryColor, FieldDueDate, FieldFontColor, FieldPhoto,
}

// RemovePhotoValue typed into the photo field removes the current photo
const RemovePhotoValue = "-"

// EditValues is what the edit row holds when the user saves
type EditValues struct {
	TaskID        models.TaskID
	Text          string
	Category      models.Category
	CategoryColor string
	DueDate       string
	FontColor     string
	PhotoPath     string
	RemovePhoto   bool
}

// EditState backs the inline edit row. Only one exists at a time.
type EditState struct {
	taskID   models.TaskID
	category models.Category
	hasPhoto bool
	inputs   [fieldCount]textinput.Model
	focus    EditField
}

// NewEditState fills the edit row from task and focuses the text field
func NewEditState(task models.Task) (*EditState, tea.Cmd) {
	s := &EditState{
		taskID:   task.ID,
		category: task.Category,
		hasPhoto: task.Photo != nil,
	}

	values := map[EditField]string{
		FieldText:          task.Text,
		FieldCategoryColor: task.CategoryColor,
		FieldDueDate:       task.DueDate,
		FieldFontColor:     task.FontColor,
	}
	placeholders := map[EditField]string{
		FieldText:          "task text",
		FieldCategoryColor: "#rrggbb",
		FieldDueDate:       "yyyy-mm-dd",
		FieldFontColor:     "#rrggbb",
		FieldPhoto:         "path to image, - to remove",
	}
	for _, f := range EditFields[1:] {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[f]
		ti.SetValue(values[f])
		s.inputs[f] = ti
	}

	return s, s.setFocus(FieldText)
}

// TaskID returns the task being edited
func (s *EditState) TaskID() models.TaskID {
	return s.taskID
}

// Category returns the selected category
func (s *EditState) Category() models.Category {
	return s.category
}

// HasPhoto reports whether the task had a photo when editing began
func (s *EditState) HasPhoto() bool {
	return s.hasPhoto
}

// Focus returns the focused field
func (s *EditState) Focus() EditField {
	return s.focus
}

// FocusNext moves focus forward, wrapping around
func (s *EditState) FocusNext() tea.Cmd {
	return s.setFocus((s.focus + 1) % fieldCount)
}

// FocusPrev moves focus backward, wrapping around
func (s *EditState) FocusPrev() tea.Cmd {
	return s.setFocus((s.focus + fieldCount - 1) % fieldCount)
}

func (s *EditState) setFocus(f EditField) tea.Cmd {
	for _, field := range EditFields[1:] {
		s.inputs[field].Blur()
	}
	s.focus = f
	if f == FieldCategory {
		return nil
	}
	return s.inputs[f].Focus()
}

// CycleCategory moves the category selection by dir (+1 or -1)
func (s *EditState) CycleCategory(dir int) {
	if dir < 0 {
		s.category = s.category.Prev()
		return
	}
	s.category = s.category.Next()
}

// Update forwards msg to the focused text input
func (s *EditState) Update(msg tea.Msg) tea.Cmd {
	if s.focus == FieldCategory {
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

// SetValue replaces the contents of a text field
func (s *EditState) SetValue(f EditField, value string) {
	if f == FieldCategory {
		return
	}
	s.inputs[f].SetValue(value)
}

// Value returns the contents of a text field
func (s *EditState) Value(f EditField) string {
	if f == FieldCategory {
		return string(s.category)
	}
	return s.inputs[f].Value()
}

// FieldView renders one text field
func (s *EditState) FieldView(f EditField) string {
	if f == FieldCategory {
		return string(s.category)
	}
	return s.inputs[f].View()
}

// Values collects the row for saving
func (s *EditState) Values() EditValues {
	photo := s.inputs[FieldPhoto].Value()
	v := EditValues{
		TaskID:        s.taskID,
		Text:          s.inputs[FieldText].Value(),
		Category:      s.category,
		CategoryColor: s.inputs[FieldCategoryColor].Value(),
		DueDate:       s.inputs[FieldDueDate].Value(),
		FontColor:     s.inputs[FieldFontColor].Value(),
	}
	if photo == RemovePhotoValue {
		v.RemovePhoto = true
	} else {
		v.PhotoPath = photo
	}
	return v
}
