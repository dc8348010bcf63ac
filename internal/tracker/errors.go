package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrDraftNotFound      = errors.New("draft not found")
	ErrPunchItemNotFound  = errors.New("punch list item not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrPunchListLocked    = errors.New("punch list is locked until FAT is completed")
	ErrNoBlobStore        = errors.New("attachment storage is not configured")
)

// ValidationError is a bad input caught before any backend call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BackendError wraps a failed write to the record store or blob store. The
// in-memory state was not changed.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
