// Package reminder builds the daily digest of due tasks and schedules it
// with cron.
package reminder

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/jot/internal/models"
)

// Digest groups the tasks that need attention on a given day
type Digest struct {
	Date     string // yyyy-mm-dd
	Overdue  []models.Task
	DueToday []models.Task
}

// BuildDigest picks the tasks due on or before now's local date. Overdue
// tasks are ordered oldest first; tasks without a due date are never listed.
func BuildDigest(tasks []models.Task, now time.Time) Digest {
	today := models.Today(now)
	d := Digest{Date: today}

	for _, t := range tasks {
		if !t.HasDueDate() || !models.ValidDate(t.DueDate) {
			continue
		}
		// yyyy-mm-dd compares correctly as a string
		switch {
		case t.DueDate == today:
			d.DueToday = append(d.DueToday, t)
		case t.DueDate < today:
			d.Overdue = append(d.Overdue, t)
		}
	}

	slices.SortStableFunc(d.Overdue, func(a, b models.Task) int {
		return strings.Compare(a.DueDate, b.DueDate)
	})
	return d
}

// Empty reports whether nothing is due
func (d Digest) Empty() bool {
	return len(d.Overdue) == 0 && len(d.DueToday) == 0
}

// Count is the number of listed tasks
func (d Digest) Count() int {
	return len(d.Overdue) + len(d.DueToday)
}

// WriteText renders the digest as plain text
func (d Digest) WriteText(w io.Writer) error {
	var b strings.Builder
	if d.Empty() {
		fmt.Fprintf(&b, "Nothing due on %s\n", d.Date)
	} else {
		fmt.Fprintf(&b, "Tasks for %s\n", d.Date)
		section(&b, "Overdue", d.Overdue)
		section(&b, "Due today", d.DueToday)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, title string, tasks []models.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d)\n", title, len(tasks))
	for _, t := range tasks {
		marker := " "
		if t.Priority == models.PriorityHigh {
			marker = "!"
		}
		fmt.Fprintf(b, " %s [%s] %s  (due %s)\n", marker, t.Category, oneLine(t.Text), t.DueDate)
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
