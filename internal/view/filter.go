package view

import "github.com/thenoetrevino/jot/internal/models"

// Filter returns the tasks whose category equals category, keeping their
// relative order. FilterAll and "" pass everything.
func Filter(tasks []models.Task, category string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if category == FilterAll || category == "" || string(t.Category) == category {
			out = append(out, t)
		}
	}
	return out
}
