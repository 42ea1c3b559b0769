package models

// ============================================================================
// CATEGORY COLORS
// ============================================================================

// DefaultCategoryColors are the preset colors applied to new tasks
var DefaultCategoryColors = map[Category]string{
	CategoryWork:     "#4fb9ff",
	CategoryPersonal: "#ff42c6",
	CategoryOther:    "#6fcf97",
}

// ============================================================================
// PRIORITY COLORS
// ============================================================================

// PriorityHighColor and PriorityLowColor mark the accent bar of a task.
// Normal tasks use their category color instead.
const (
	PriorityHighColor = "#ff4d4d"
	PriorityLowColor  = "#6fcf97"
)

// ============================================================================
// DEFAULTS AND LIMITS
// ============================================================================

// DefaultFontColor is used when a task has no usable font color
const DefaultFontColor = "#000000"

// MaxPhotoBytes caps the size of an attached photo (2 MiB)
const MaxPhotoBytes = 2 << 20

// DateLayout is the on-disk and on-screen due date format
const DateLayout = "2006-01-02"
