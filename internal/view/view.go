// Package view turns the stored task list into what the user sees. Every
// function here is a pure projection of (tasks, Config); the package holds no
// state of its own.
package view

import (
	"github.com/thenoetrevino/jot/internal/models"
)

// FilterAll is the category filter value that passes every task
const FilterAll = "All"

// Config is everything besides the task list that shapes the rendered view
type Config struct {
	Category string        // FilterAll, empty, or a category name
	Sort     SortDirection // SortNone keeps insertion order
	EditID   models.TaskID // the single task rendered as an edit row, if any
}

// Row is one rendered line of the list
type Row struct {
	Task    models.Task
	Editing bool
}

// Project filters, then sorts, then marks the edit row. At most one row is
// marked as editing because IDs are unique.
func Project(tasks []models.Task, cfg Config) []Row {
	visible := SortByDue(Filter(tasks, cfg.Category), cfg.Sort)

	rows := make([]Row, len(visible))
	for i, t := range visible {
		rows[i] = Row{
			Task:    t,
			Editing: cfg.EditID != "" && t.ID == cfg.EditID,
		}
	}
	return rows
}

// FilterOptions lists the values the category filter cycles through
func FilterOptions() []string {
	opts := []string{FilterAll}
	for _, c := range models.Categories {
		opts = append(opts, string(c))
	}
	return opts
}

// NextFilter returns the filter value after current, wrapping around
func NextFilter(current string) string {
	opts := FilterOptions()
	for i, o := range opts {
		if o == current {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// DueLabel formats the due date for display, or returns "" when absent
func DueLabel(t models.Task) string {
	if !t.HasDueDate() {
		return ""
	}
	return "Due: " + t.DueDate
}

// AccentColor is the color of a row's priority marker. Normal priority uses
// the category color.
func AccentColor(t models.Task) string {
	switch t.Priority {
	case models.PriorityHigh:
		return models.PriorityHighColor
	case models.PriorityLow:
		return models.PriorityLowColor
	}
	if t.CategoryColor != "" {
		return t.CategoryColor
	}
	return t.Category.DefaultColor()
}
