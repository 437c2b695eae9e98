package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Opener opens snippet files in an external editor.
type Opener struct {
	// Editor is the configured editor command; it takes precedence over
	// $VISUAL and $EDITOR. It may carry arguments ("code --wait").
	Editor string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Fallback displays the file when no editor is configured.
	Fallback func(path string, content []byte) error
}

// Command returns the editor command line, or nil if none is configured.
func (o *Opener) Command() []string {
	for _, c := range []string{o.Editor, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if f := strings.Fields(c); len(f) > 0 {
			return f
		}
	}
	return nil
}

// Open runs the editor on path and waits for it to exit.
func (o *Opener) Open(ctx context.Context, path string) error {
	argv := o.Command()
	if argv == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("ui: open %s: %w", path, err)
		}
		if o.Fallback == nil {
			return errors.New("ui: no editor configured, set $EDITOR or app.editor")
		}
		return o.Fallback(path, data)
	}
	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = o.Stdin, o.Stdout, o.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ui: run %s: %w", argv[0], err)
	}
	return nil
}
