package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// Field keys of the add task form
const (
	KeyText          = "text"
	KeyCategory      = "category"
	KeyCategoryColor = "categoryColor"
	KeyDueDate       = "dueDate"
	KeyFontColor     = "fontColor"
	KeyPhoto         = "photo"
)

// validateText mirrors the store's rule so the user sees it before submitting
func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("task text cannot be empty")
	}
	return nil
}

func validateDueDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || models.ValidDate(s) {
		return nil
	}
	return errors.New("use yyyy-mm-dd or leave empty")
}

// CreateAddTaskForm creates a huh form for adding a task
// The form uses pointers to update values in place
func CreateAddTaskForm(values *state.AddFormValues) *huh.Form {
	categories := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		categories[i] = string(c)
	}

	fields := []huh.Field{
		huh.NewInput().
			Key(KeyText).
			Title("Task").
			Placeholder("What needs doing?").
			Validate(validateText).
			Value(&values.Text),

		huh.NewSelect[string]().
			Key(KeyCategory).
			Title("Category").
			Options(huh.NewOptions(categories...)...).
			Value(&values.Category),

		huh.NewInput().
			Key(KeyCategoryColor).
			Title("Category color").
			Placeholder("blank for the category preset").
			Value(&values.CategoryColor),

		huh.NewInput().
			Key(KeyDueDate).
			Title("Due date").
			Placeholder("yyyy-mm-dd, blank for none").
			Validate(validateDueDate).
			Value(&values.DueDate),

		huh.NewInput().
			Key(KeyFontColor).
			Title("Font color").
			Placeholder("#000000").
			Value(&values.FontColor),

		huh.NewInput().
			Key(KeyPhoto).
			Title("Photo").
			Placeholder("optional path to an image (max 2 MiB)").
			Value(&values.PhotoPath),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}
