package view

import (
	"slices"

	"github.com/thenoetrevino/jot/internal/models"
)

// SortDirection orders tasks by due date
type SortDirection int

const (
	SortNone SortDirection = iota // insertion order
	SortAsc
	SortDesc
)

// String returns the flag spelling of the direction
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// Toggle flips the direction. The first toggle from SortNone is ascending.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// ParseSortDirection accepts asc, desc, none and the empty string
func ParseSortDirection(s string) (SortDirection, bool) {
	switch s {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	case "", "none":
		return SortNone, true
	}
	return SortNone, false
}

// SortByDue returns a stably sorted copy of tasks. Tasks without a usable due
// date go last in both directions.
func SortByDue(tasks []models.Task, dir SortDirection) []models.Task {
	out := slices.Clone(tasks)
	if dir == SortNone {
		return out
	}

	slices.SortStableFunc(out, func(a, b models.Task) int {
		da, okA := a.Due()
		db, okB := b.Due()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		c := da.Compare(db)
		if dir == SortDesc {
			c = -c
		}
		return c
	})
	return out
}
