// Package apperr holds the sentinel errors shared across snipmaker.
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrCanceled reports that the user dismissed a prompt. It aborts the
	// current operation and is never shown as an error.
	ErrCanceled = errors.New("canceled")
	// ErrInvalidName reports a snippet file name that does not follow the
	// naming convention.
	ErrInvalidName = errors.New("invalid snippet file name")
	// ErrDeclined reports that the user refused to overwrite an existing file.
	ErrDeclined = errors.New("overwrite declined")
)
