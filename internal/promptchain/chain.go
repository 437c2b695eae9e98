// Package promptchain collects the fields of a snippet through a fixed
// sequence of prompts and writes the result.
//
// The chain is a small state machine:
//
//	Trigger → Description → Scope → FileName → Write → Done
//	                                    ↑          │
//	                                    └──────────┘ (invalid name, declined
//	                                                  overwrite, write error)
//
// Dismissing any prompt moves it to Abort, from which nothing is written.
package promptchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/models"
	"github.com/starford/snipmaker/internal/snippet"
	"github.com/starford/snipmaker/internal/storage"
	"github.com/starford/snipmaker/internal/ui"
)

// State is a step of the chain.
type State int

// Chain states.
const (
	StateTrigger State = iota
	StateDescription
	StateScope
	StateFileName
	StateWrite
	StateDone
	StateAbort
)

var stateNames = [...]string{
	StateTrigger:     "trigger",
	StateDescription: "description",
	StateScope:       "scope",
	StateFileName:    "file_name",
	StateWrite:       "write",
	StateDone:        "done",
	StateAbort:       "abort",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Prompt captions.
const (
	CaptionTrigger     = "Trigger"
	CaptionDescription = "Description"
	CaptionScope       = "Scope"
	CaptionFileName    = "File Name"
)

// Chain drives one snippet through the prompts.
type Chain struct {
	host   ui.Host
	store  storage.Provider
	logger *slog.Logger

	state State
	draft models.Draft
	path  string
}

// New returns a chain for draft, which carries the captured body and the
// default scope. logger may be nil.
func New(host ui.Host, store storage.Provider, logger *slog.Logger, draft models.Draft) *Chain {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Chain{host: host, store: store, logger: logger, draft: draft}
}

// State returns the current state.
func (c *Chain) State() State {
	return c.state
}

// Draft returns the fields collected so far.
func (c *Chain) Draft() models.Draft {
	return c.draft
}

// Run steps the chain until it is done or aborted. It returns the path of
// the written file, or apperr.ErrCanceled if the user dismissed a prompt.
func (c *Chain) Run(ctx context.Context) (string, error) {
	for {
		switch c.state {
		case StateDone:
			return c.path, nil
		case StateAbort:
			return "", apperr.ErrCanceled
		}
		if err := c.Step(ctx); err != nil {
			return "", err
		}
	}
}

// Step runs the action of the current state and moves to the next one.
func (c *Chain) Step(ctx context.Context) error {
	from := c.state
	err := c.step(ctx)
	c.logger.Debug("promptchain: step",
		slog.String("from", from.String()),
		slog.String("to", c.state.String()))
	return err
}

func (c *Chain) step(ctx context.Context) error {
	switch c.state {
	case StateTrigger:
		return c.ask(ctx, CaptionTrigger, "", &c.draft.Trigger, StateDescription)
	case StateDescription:
		return c.ask(ctx, CaptionDescription, "", &c.draft.Description, StateScope)
	case StateScope:
		return c.ask(ctx, CaptionScope, c.draft.Scope, &c.draft.Scope, StateFileName)
	case StateFileName:
		return c.fileName(ctx)
	case StateWrite:
		c.write()
		return nil
	case StateDone, StateAbort:
		return nil
	default:
		return fmt.Errorf("promptchain: unknown state %v", c.state)
	}
}

// ask shows one prompt and stores the answer in dst.
func (c *Chain) ask(ctx context.Context, caption, initial string, dst *string, next State) error {
	v, err := c.host.Input(ctx, caption, initial)
	if err != nil {
		return c.abort(err)
	}
	*dst = v
	c.state = next
	return nil
}

// abort moves to Abort. Cancellation is a clean exit; anything else is
// reported to the caller.
func (c *Chain) abort(err error) error {
	c.state = StateAbort
	if errors.Is(err, apperr.ErrCanceled) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.logger.Debug("promptchain: canceled")
		return nil
	}
	return err
}

func (c *Chain) fileName(ctx context.Context) error {
	name, err := c.host.Input(ctx, CaptionFileName, snippet.DefaultFileName(c.draft.Trigger))
	if err != nil {
		return c.abort(err)
	}
	c.draft.FileName = name

	if err := snippet.ValidateFileName(name); err != nil {
		c.retry(err, true)
		return nil
	}

	exists, err := c.store.Exists(name)
	if err != nil {
		c.retry(err, true)
		return nil
	}
	if exists {
		ok, err := c.host.Confirm(ctx, snippet.OverrideQuestion(name))
		if err != nil {
			return c.abort(err)
		}
		if !ok {
			c.retry(fmt.Errorf("%s: %w", name, apperr.ErrDeclined), false)
			return nil
		}
	}
	c.state = StateWrite
	return nil
}

// retry sends the chain back to the file name prompt. Invalid names and
// failed writes also show the naming hint.
func (c *Chain) retry(reason error, hint bool) {
	c.logger.Debug("promptchain: retry file name", slog.String("reason", reason.Error()))
	if hint {
		c.host.ErrorMessage(snippet.InvalidNameMessage)
	}
	c.state = StateFileName
}

func (c *Chain) write() {
	name := c.draft.FileName
	if err := c.store.Write(name, snippet.RenderDraft(c.draft)); err != nil {
		c.retry(err, true)
		return
	}
	path, _ := c.store.Path(name)
	c.path = path
	c.state = StateDone
	c.logger.Info("snippet written", slog.String("path", path))

	if err := c.host.OpenFile(path); err != nil {
		c.logger.Warn("promptchain: open failed", slog.String("path", path), slog.String("error", err.Error()))
		c.host.ErrorMessage(err.Error())
	}
}
