// Package converters translates between the persisted task records and the
// domain models, and normalizes user supplied color values.
//
// Stored records are read leniently: optional fields may be absent and older
// records may carry values the current model no longer accepts. Every repair
// is reported back to the caller instead of being applied silently.
package converters

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/jot/internal/models"
)

// ErrEmptyText marks a stored record that cannot be recovered
var ErrEmptyText = errors.New("stored task has empty text")

// StoredTask is the loosely typed shape of one element of the persisted array.
// Field names match models.Task so the list can be written from the models directly.
type StoredTask struct {
	ID            models.TaskID `json:"id"`
	Text          string        `json:"text"`
	Category      string        `json:"category"`
	CategoryColor string        `json:"categoryColor"`
	FontColor     string        `json:"fontColor"`
	DueDate       string        `json:"dueDate"`
	Priority      string        `json:"priority"`
	Photo         string        `json:"photo"`
	CreatedAt     string        `json:"createdAt"`
}

// TaskToModel converts a stored record into a models.Task.
//
// Repairs applied, each described in the returned notes:
//   - missing ID: a new one is generated
//   - unknown category: Other
//   - missing or unparsable colors: category preset / default font color
//   - unknown priority: Normal
//   - malformed due date: dropped
//   - photo that is not an image data URL (e.g. a stale blob: URL): dropped
//
// Records whose text is empty after trimming return ErrEmptyText.
func TaskToModel(rec StoredTask) (models.Task, []string, error) {
	var notes []string

	text := strings.TrimSpace(rec.Text)
	if text == "" {
		return models.Task{}, nil, ErrEmptyText
	}

	task := models.Task{
		ID:   rec.ID,
		Text: text,
	}
	if task.ID == "" {
		task.ID = models.NewTaskID()
		notes = append(notes, "generated missing id")
	}

	category, err := models.ParseCategory(rec.Category)
	if err != nil {
		category = models.CategoryOther
		notes = append(notes, fmt.Sprintf("unknown category %q replaced with Other", rec.Category))
	}
	task.Category = category

	task.CategoryColor = NormalizeColor(rec.CategoryColor, category.DefaultColor())
	task.FontColor = NormalizeColor(rec.FontColor, models.DefaultFontColor)

	switch {
	case rec.Priority == "":
		task.Priority = models.PriorityNormal
	default:
		p, err := models.ParsePriority(rec.Priority)
		if err != nil {
			p = models.PriorityNormal
			notes = append(notes, fmt.Sprintf("unknown priority %q replaced with Normal", rec.Priority))
		}
		task.Priority = p
	}

	if rec.DueDate != "" {
		if models.ValidDate(rec.DueDate) {
			task.DueDate = rec.DueDate
		} else {
			notes = append(notes, fmt.Sprintf("malformed due date %q dropped", rec.DueDate))
		}
	}

	if rec.Photo != "" {
		photo, err := models.ParseDataURL(rec.Photo)
		switch {
		case err != nil:
			notes = append(notes, "unreadable photo dropped")
		case !photo.IsImage() || photo.Size() > models.MaxPhotoBytes:
			notes = append(notes, "invalid photo dropped")
		default:
			task.Photo = photo
		}
	}

	if rec.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, rec.CreatedAt); err == nil {
			task.CreatedAt = ts
		}
	}

	return task, notes, nil
}

// TasksToModels converts a whole stored list, skipping unrecoverable records.
// notes maps a record's index in recs to what was repaired or why it was skipped.
func TasksToModels(recs []StoredTask) ([]models.Task, map[int][]string) {
	tasks := make([]models.Task, 0, len(recs))
	notes := make(map[int][]string)
	seen := make(map[models.TaskID]bool, len(recs))

	for i, rec := range recs {
		task, n, err := TaskToModel(rec)
		if err != nil {
			notes[i] = []string{err.Error()}
			continue
		}
		if seen[task.ID] {
			task.ID = models.NewTaskID()
			n = append(n, "duplicate id replaced")
		}
		seen[task.ID] = true
		if len(n) > 0 {
			notes[i] = n
		}
		tasks = append(tasks, task)
	}

	return tasks, notes
}
