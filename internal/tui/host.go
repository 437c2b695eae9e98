// Package tui implements ui.Host with bubbletea widgets. Every prompt runs as
// its own short-lived program, so a call blocks until the user answers.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/ui"
)

// Host is a terminal ui.Host.
type Host struct {
	in     io.Reader
	out    io.Writer
	opener *ui.Opener
	width  int

	renderer *glamour.TermRenderer
	preview  string // rendered transient preview, "" when closed
}

var _ ui.Host = (*Host)(nil)

// New returns a Host reading keys from in and drawing to out. Files are
// opened with opener; without an editor they are rendered to out.
func New(in io.Reader, out io.Writer, opener *ui.Opener) *Host {
	h := &Host{in: in, out: out, opener: opener, width: 80}
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			h.width = w
		}
	}
	if h.opener == nil {
		h.opener = &ui.Opener{}
	}
	if h.opener.Fallback == nil {
		h.opener.Fallback = h.printFile
	}
	return h
}

// IsInteractive reports whether in and out are both terminals.
func IsInteractive(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

func (h *Host) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(h.in),
		tea.WithOutput(h.out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil, apperr.ErrCanceled
		}
		return nil, fmt.Errorf("tui: %w", err)
	}
	return final, nil
}

// Input shows an editable single-line prompt.
func (h *Host) Input(ctx context.Context, caption, initial string) (string, error) {
	final, err := h.run(ctx, newInputModel(caption, initial, h.width))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.canceled {
		return "", apperr.ErrCanceled
	}
	return m.Value(), nil
}

// Confirm shows an OK/Cancel dialog.
func (h *Host) Confirm(ctx context.Context, message string) (bool, error) {
	final, err := h.run(ctx, newConfirmModel(message))
	if errors.Is(err, apperr.ErrCanceled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return final.(confirmModel).Confirmed(), nil
}

// Pick shows a filterable list with the current preview beside it.
func (h *Host) Pick(ctx context.Context, items []string, onHighlight func(int)) (int, error) {
	if len(items) == 0 {
		h.StatusMessage("No snippets found.")
		return -1, nil
	}
	m := newPickerModel(items, onHighlight, func() string { return h.preview }, h.width)
	final, err := h.run(ctx, m)
	if errors.Is(err, apperr.ErrCanceled) {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return final.(pickerModel).Chosen(), nil
}

// Preview renders path into the transient preview pane.
func (h *Host) Preview(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tui: preview %s: %w", path, err)
	}
	h.preview = h.render(path, data, h.width/2)
	return nil
}

// ClosePreview drops the transient preview.
func (h *Host) ClosePreview() {
	h.preview = ""
}

// OpenFile hands path to the editor.
func (h *Host) OpenFile(path string) error {
	return h.opener.Open(context.Background(), path)
}

// ErrorMessage prints msg in the error style.
func (h *Host) ErrorMessage(msg string) {
	fmt.Fprintln(h.out, errorStyle.Render("✗ "+msg))
}

// StatusMessage prints msg in the status style.
func (h *Host) StatusMessage(msg string) {
	fmt.Fprintln(h.out, statusStyle.Render("✓ "+msg))
}

func (h *Host) printFile(path string, data []byte) error {
	_, err := fmt.Fprintln(h.out, h.render(path, data, h.width))
	return err
}

// render formats a snippet file as a highlighted XML block. It falls back to
// the raw text when glamour is unavailable.
func (h *Host) render(path string, data []byte, width int) string {
	md := "**" + filepath.Base(path) + "**\n\n```xml\n" + string(data) + "\n```\n"
	if h.renderer == nil {
		if width < 40 {
			width = 80
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width-4),
		)
		if err != nil {
			return string(data)
		}
		h.renderer = r
	}
	out, err := h.renderer.Render(md)
	if err != nil {
		return string(data)
	}
	return strings.TrimRight(out, "\n")
}
