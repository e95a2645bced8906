package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Exit statuses returned by recbench and generate-vectors.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1 // unreadable or malformed list file, metrics export failure
	ExitErrorTimeout  = 2 // -timeout reached before a variant finished
	ExitErrorMismatch = 3 // two variants of a family disagreed
	ExitErrorConfig   = 4 // bad flag, env override or variant key
	ExitErrorCanceled = 130
)

// ConfigError is a rejected flag, environment override or variant key.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError with fmt.Sprintf semantics.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// DatasetError reports a failure to load an integer list file. Segment is
// the zero-based index of the offending segment among the parsed ones, or
// -1 when the failure is not tied to a segment (e.g. the file is missing).
type DatasetError struct {
	Path    string
	Segment int
	Cause   error
}

// Error returns a message naming the file and, when known, the segment.
func (e *DatasetError) Error() string {
	if e.Segment >= 0 {
		return fmt.Sprintf("dataset %s: segment %d: %v", e.Path, e.Segment, e.Cause)
	}
	return fmt.Sprintf("dataset %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *DatasetError) Unwrap() error { return e.Cause }

// TimeoutError names the variant that was still running when the time
// limit ran out.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError prefixes err with a formatted step description, keeping err in
// the chain. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err comes from the run's context ending,
// as opposed to a failure of the run itself.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps err to the exit status that reports it. Timeouts win over
// cancellation; anything unclassified is ExitErrorGeneric.
func ExitCodeFor(err error) int {
	var timeoutErr TimeoutError
	var configErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
