package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unreadable files, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags, wrong number of arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty text, unknown categories, malformed dates, rejected photos.
	ExitValidation = 5
)

// CodedError carries the process exit code out of a command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err so main exits with code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the code main should exit with for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// CodeFor classifies a store error
func CodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return ExitNotFound
	case taskservice.IsValidation(err):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode names err for JSON error output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, taskservice.ErrPhotoRead):
		return "PHOTO_READ_ERROR"
	case taskservice.IsValidation(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, taskservice.ErrStorageWrite):
		return "STORAGE_WRITE_ERROR"
	case errors.Is(err, taskservice.ErrStorageRead):
		return "STORAGE_READ_ERROR"
	default:
		return "ERROR"
	}
}

// ExactArgs is cobra.ExactArgs reporting ExitUsage
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usage(cmd, err)
		}
		return nil
	}
}

// FlagErrorFunc reports flag parsing failures with ExitUsage
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	return usage(cmd, err)
}

// usage prints err with a pointer to --help. These errors happen before a
// command's formatter exists.
func usage(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
	return Exit(ExitUsage, err)
}
