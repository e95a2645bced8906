// Package apperrors holds the error types recbench reports and the mapping
// from an error chain to a process exit status. Types that carry a cause
// implement Unwrap so callers can use errors.Is and errors.As through any
// amount of %w wrapping.
package apperrors
