package utils

import "fmt"

// ArchiveError is a contextual error attached to a point in the archival
// pipeline (aligning a sink, resolving a header, writing a dependency).
type ArchiveError struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *ArchiveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// WrapError creates a contextual error. Returns nil if cause is nil, so it
// is safe to call unconditionally at the end of a fallible operation.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &ArchiveError{
		Context: context,
		Cause:   cause,
	}
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *ArchiveError) Unwrap() error {
	return e.Cause
}
