package models

import "fmt"

// Priority is the urgency marker of a task
type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityLow    Priority = "Low"
)

// Next returns the priority that follows p in the Normal -> High -> Low cycle.
// Unknown values restart the cycle at High, as if they were Normal.
func (p Priority) Next() Priority {
	switch p {
	case PriorityHigh:
		return PriorityLow
	case PriorityLow:
		return PriorityNormal
	default:
		return PriorityHigh
	}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityHigh, PriorityLow:
		return true
	}
	return false
}

// ParsePriority converts user input into a Priority, case-insensitively
func ParsePriority(s string) (Priority, error) {
	for _, p := range []Priority{PriorityNormal, PriorityHigh, PriorityLow} {
		if equalFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}
