package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyText       = errors.New("task text cannot be empty")
	ErrInvalidCategory = errors.New("category must be Work, Personal or Other")
	ErrInvalidDueDate  = errors.New("due date must be a valid yyyy-mm-dd date")
	ErrInvalidTaskID   = errors.New("invalid task ID")

	// Photo errors
	ErrPhotoNotImage = errors.New("photo must be an image file")
	ErrPhotoTooLarge = errors.New("photo exceeds the 2 MiB limit")
	ErrPhotoRead     = errors.New("failed to read photo")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)

// Storage errors
var (
	// ErrStorageRead indicates the persisted list could not be read or parsed.
	// The store falls back to an empty list.
	ErrStorageRead = errors.New("could not load saved tasks")

	// ErrStorageWrite indicates the list could not be persisted.
	// The previously saved list is left untouched.
	ErrStorageWrite = errors.New("could not save tasks")
)

// IsValidation reports whether err is a user input problem rather than a
// storage or I/O failure
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptyText, ErrInvalidCategory, ErrInvalidDueDate, ErrInvalidTaskID,
		ErrPhotoNotImage, ErrPhotoTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
