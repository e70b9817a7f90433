package domain

import "errors"

var (
	// ErrNotFound is available to callers that want to turn a missing record into an error.
	// Stores themselves report absence through the ok result of Get.
	ErrNotFound = errors.New("record not found")

	// ErrCorruptEntry is returned when an indexed file can no longer be read or decoded.
	ErrCorruptEntry = errors.New("corrupt entry")

	// ErrWriteFailure is returned when a record could not be persisted.
	ErrWriteFailure = errors.New("write failed")

	// ErrDeleteFailure is returned when an indexed file could not be removed.
	ErrDeleteFailure = errors.New("delete failed")

	// ErrInvalidUsername is returned for usernames that cannot name a file.
	ErrInvalidUsername = errors.New("invalid username")
)
