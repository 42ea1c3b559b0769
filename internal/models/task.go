package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TaskID identifies a task for its whole lifetime. Edit, delete and undo all
// target tasks by ID, never by position in a rendered list.
type TaskID string

// NewTaskID returns a freshly generated identifier.
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

// UnmarshalJSON accepts both string IDs and the numeric creation timestamps
// written by older versions of the stored list.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = TaskID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return err
	}
	*id = TaskID(n.String())
	return nil
}

// Task represents a single item on the list
type Task struct {
	ID            TaskID    `json:"id"`
	Text          string    `json:"text"`
	Category      Category  `json:"category"`
	CategoryColor string    `json:"categoryColor,omitempty"`
	FontColor     string    `json:"fontColor,omitempty"`
	DueDate       string    `json:"dueDate,omitempty"` // yyyy-mm-dd, empty means none
	Priority      Priority  `json:"priority,omitempty"`
	Photo         *Photo    `json:"photo,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// HasDueDate reports whether the task carries a due date
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// Due parses the due date. ok is false when the task has none or it is malformed.
func (t Task) Due() (due time.Time, ok bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DateLayout, t.DueDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Clone returns a copy that shares no mutable state with t.
func (t Task) Clone() Task {
	if t.Photo != nil {
		p := *t.Photo
		p.Data = append([]byte(nil), t.Photo.Data...)
		t.Photo = &p
	}
	return t
}
