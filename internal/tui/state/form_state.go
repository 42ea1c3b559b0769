package state

import (
	"charm.land/huh/v2"
)

// AddFormValues are bound to the fields of the add task form
type AddFormValues struct {
	Text          string
	Category      string
	CategoryColor string
	DueDate       string
	FontColor     string
	PhotoPath     string
}

// FormState manages the add task form.
type FormState struct {
	AddForm *huh.Form
	Values  AddFormValues
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Reset clears the bound values, prefilling the due date with today
func (s *FormState) Reset(category, today string) {
	s.AddForm = nil
	s.Values = AddFormValues{
		Category: category,
		DueDate:  today,
	}
}

// HasChanges reports whether the user typed anything worth keeping
func (s *FormState) HasChanges() bool {
	v := s.Values
	return v.Text != "" || v.CategoryColor != "" || v.FontColor != "" || v.PhotoPath != ""
}
