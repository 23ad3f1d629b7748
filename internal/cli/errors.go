package cli

import (
	"errors"
	"fmt"
)

// ExitError represents a command failure with a specific exit code.
//
// Cobra RunE functions return NewExitError(code) instead of calling
// os.Exit directly. The error propagates up to [RunWithConfig], where
// [IsExitError] extracts the code for [ExecuteResult]. Only [Execute]
// terminates the process.
type ExitError struct {
	// Code is the exit code to return to the shell.
	Code int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface. Without a cause it reads
// "exit status N", matching os/exec.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying cause.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// exitWith wraps err in an [ExitError] carrying code.
func exitWith(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// IsExitError checks if an error is an [ExitError] and extracts its exit code.
//
// Returns (code, true) if err is or wraps an *ExitError. Returns (0, false)
// for nil or any other error.
func IsExitError(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
