// Package testutil provides shared test helpers: a temporary snippet library
// and a scripted ui.Host.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/storage"
	"github.com/starford/snipmaker/internal/ui"
)

// TestLibrary creates a storage.FS over a snippet directory inside a
// temporary root. The directory itself is not created.
func TestLibrary(t *testing.T, opts ...storage.FSOption) *storage.FS {
	t.Helper()
	store, err := storage.NewFS(filepath.Join(t.TempDir(), "Snippets"), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

// Answer is a scripted reply to an Input prompt.
type Answer struct {
	Text   string
	Cancel bool
}

// Say answers a prompt with text.
func Say(text string) Answer { return Answer{Text: text} }

// Cancel dismisses a prompt.
func Cancel() Answer { return Answer{Cancel: true} }

// PickScript is a scripted interaction with a Pick list.
type PickScript struct {
	Highlight []int // entries moved to before choosing
	Index     int   // chosen index, -1 to dismiss
}

// Prompt records one Input call.
type Prompt struct {
	Caption string
	Initial string
}

// ScriptedHost is a ui.Host that replays scripted answers and records what
// it was asked to show. Running out of answers dismisses the prompt.
type ScriptedHost struct {
	Inputs   []Answer
	Confirms []bool
	Picks    []PickScript

	Prompts   []Prompt
	Questions []string
	PickLists [][]string
	Errors    []string
	Statuses  []string
	Opened    []string
	Previews  []string
	Closed    int
	OpenErr   error
}

var _ ui.Host = (*ScriptedHost)(nil)

// Input returns the next scripted answer.
func (h *ScriptedHost) Input(_ context.Context, caption, initial string) (string, error) {
	h.Prompts = append(h.Prompts, Prompt{Caption: caption, Initial: initial})
	if len(h.Inputs) == 0 {
		return "", apperr.ErrCanceled
	}
	a := h.Inputs[0]
	h.Inputs = h.Inputs[1:]
	if a.Cancel {
		return "", apperr.ErrCanceled
	}
	return a.Text, nil
}

// Confirm returns the next scripted decision.
func (h *ScriptedHost) Confirm(_ context.Context, message string) (bool, error) {
	h.Questions = append(h.Questions, message)
	if len(h.Confirms) == 0 {
		return false, nil
	}
	ok := h.Confirms[0]
	h.Confirms = h.Confirms[1:]
	return ok, nil
}

// Pick replays the next PickScript.
func (h *ScriptedHost) Pick(_ context.Context, items []string, onHighlight func(int)) (int, error) {
	h.PickLists = append(h.PickLists, items)
	if len(h.Picks) == 0 {
		return -1, nil
	}
	p := h.Picks[0]
	h.Picks = h.Picks[1:]
	if onHighlight != nil {
		for _, i := range p.Highlight {
			onHighlight(i)
		}
	}
	return p.Index, nil
}

// Preview records path.
func (h *ScriptedHost) Preview(path string) error {
	h.Previews = append(h.Previews, path)
	return nil
}

// ClosePreview counts the call.
func (h *ScriptedHost) ClosePreview() { h.Closed++ }

// OpenFile records path and returns OpenErr.
func (h *ScriptedHost) OpenFile(path string) error {
	h.Opened = append(h.Opened, path)
	return h.OpenErr
}

// ErrorMessage records msg.
func (h *ScriptedHost) ErrorMessage(msg string) { h.Errors = append(h.Errors, msg) }

// StatusMessage records msg.
func (h *ScriptedHost) StatusMessage(msg string) { h.Statuses = append(h.Statuses, msg) }
