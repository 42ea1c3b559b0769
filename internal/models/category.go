package models

import (
	"fmt"
	"strings"
)

// Category is the closed set of task groupings
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryOther    Category = "Other"
)

// Categories lists every category in display order
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryOther}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultColor returns the preset color used when a task does not override it
func (c Category) DefaultColor() string {
	if color, ok := DefaultCategoryColors[c]; ok {
		return color
	}
	return DefaultCategoryColors[CategoryOther]
}

// Next returns the following category, wrapping around
func (c Category) Next() Category {
	for i, known := range Categories {
		if c == known {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return Categories[0]
}

// Prev returns the preceding category, wrapping around
func (c Category) Prev() Category {
	for i, known := range Categories {
		if c == known {
			return Categories[(i+len(Categories)-1)%len(Categories)]
		}
	}
	return Categories[len(Categories)-1]
}

// ParseCategory converts user input into a Category, case-insensitively
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if equalFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
