package expload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := svc.LoadActionChoice(ctx, path)
//	if errors.Is(err, expload.ErrMalformedRecord) {
//	    // Handle a bad input line
//	}
var (
	// ErrInvalidConfig indicates the resolved configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFileAccess indicates the input file is missing or unreadable.
	ErrFileAccess = errors.New("file access failed")

	// ErrMalformedRecord indicates a line did not contain exactly one
	// key=value delimiter.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrValueDecode indicates a record value was not a valid JSON array
	// of numbers.
	ErrValueDecode = errors.New("value decode failed")

	// ErrConnectionFailed indicates the Redis connection could not be
	// established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrWriteFailed indicates a write to the store failed.
	ErrWriteFailed = errors.New("store write failed")

	// ErrNotImplemented indicates a subcommand is not yet implemented.
	ErrNotImplemented = errors.New("not implemented")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrFileAccess):
		return ExitFileAccessError
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	case errors.Is(err, ErrMalformedRecord):
		return ExitMalformedRecord
	case errors.Is(err, ErrValueDecode):
		return ExitValueDecodeError
	case errors.Is(err, ErrNotImplemented):
		return ExitNotImplemented
	}

	// Check for common connection error patterns from the Redis client
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
