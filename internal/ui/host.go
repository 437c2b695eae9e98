// Package ui defines the host interface through which snipmaker talks to the
// user, and a line-oriented implementation of it.
package ui

import "context"

// Host is the user-facing side of every command. Calls are modal: each one
// returns only once the user has answered.
type Host interface {
	// Input shows a single-line prompt prefilled with initial and returns the
	// confirmed text. Dismissing the prompt returns apperr.ErrCanceled.
	Input(ctx context.Context, caption, initial string) (string, error)
	// Confirm asks a yes/no question. Dismissing it counts as no.
	Confirm(ctx context.Context, message string) (bool, error)
	// Pick lets the user choose one of items and returns its index, or -1
	// if the list was dismissed. onHighlight, if non-nil, is called with the
	// index of each entry the user moves to.
	Pick(ctx context.Context, items []string, onHighlight func(int)) (int, error)
	// Preview shows path in a transient view that replaces any earlier preview.
	Preview(path string) error
	// ClosePreview closes the transient view, if one is open.
	ClosePreview()
	// OpenFile opens path for editing.
	OpenFile(path string) error
	// ErrorMessage reports an error the user has to acknowledge.
	ErrorMessage(msg string)
	// StatusMessage shows a short-lived notice.
	StatusMessage(msg string)
}
