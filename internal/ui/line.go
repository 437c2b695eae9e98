package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/starford/snipmaker/internal/apperr"
)

// Line is a Host for plain streams: prompts are printed to out and answers
// read from in one line at a time. End of input dismisses the prompt.
type Line struct {
	in     *bufio.Reader
	out    io.Writer
	opener *Opener
}

// NewLine returns a line-oriented host. opener may be nil, in which case
// OpenFile prints the file to out.
func NewLine(in io.Reader, out io.Writer, opener *Opener) *Line {
	l := &Line{in: bufio.NewReader(in), out: out, opener: opener}
	if l.opener == nil {
		l.opener = &Opener{}
	}
	if l.opener.Fallback == nil {
		l.opener.Fallback = l.printFile
	}
	return l
}

var _ Host = (*Line)(nil)

// readLine returns the next line without its terminator. ok is false at end
// of input when nothing was read.
func (l *Line) readLine(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, nil
	}
	s, err := l.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("ui: read input: %w", err)
	}
	if errors.Is(err, io.EOF) && s == "" {
		return "", false, nil
	}
	return strings.TrimRight(s, "\r\n"), true, nil
}

// Input prints "caption [initial]: ". An empty answer keeps initial.
func (l *Line) Input(ctx context.Context, caption, initial string) (string, error) {
	if initial != "" {
		fmt.Fprintf(l.out, "%s [%s]: ", caption, initial)
	} else {
		fmt.Fprintf(l.out, "%s: ", caption)
	}
	s, ok, err := l.readLine(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		fmt.Fprintln(l.out)
		return "", apperr.ErrCanceled
	}
	if s == "" {
		return initial, nil
	}
	return s, nil
}

// Confirm accepts "y" or "yes", case-insensitively.
func (l *Line) Confirm(ctx context.Context, message string) (bool, error) {
	fmt.Fprintf(l.out, "%s [y/N]: ", message)
	s, ok, err := l.readLine(ctx)
	if err != nil || !ok {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Pick prints a numbered list. Answering "?N" previews entry N; an empty
// answer dismisses the list.
func (l *Line) Pick(ctx context.Context, items []string, onHighlight func(int)) (int, error) {
	if len(items) == 0 {
		fmt.Fprintln(l.out, "No snippets found.")
		return -1, nil
	}
	for i, it := range items {
		fmt.Fprintf(l.out, "%3d) %s\n", i+1, it)
	}
	for {
		fmt.Fprintf(l.out, "Select [1-%d, ?N to preview]: ", len(items))
		s, ok, err := l.readLine(ctx)
		if err != nil {
			return -1, err
		}
		s = strings.TrimSpace(s)
		if !ok || s == "" {
			return -1, nil
		}
		preview := strings.HasPrefix(s, "?")
		n, convErr := strconv.Atoi(strings.TrimPrefix(s, "?"))
		if convErr != nil || n < 1 || n > len(items) {
			fmt.Fprintf(l.out, "Enter a number between 1 and %d.\n", len(items))
			continue
		}
		if preview {
			if onHighlight != nil {
				onHighlight(n - 1)
			}
			continue
		}
		return n - 1, nil
	}
}

// Preview prints the file.
func (l *Line) Preview(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: preview %s: %w", path, err)
	}
	return l.printFile(path, data)
}

// ClosePreview is a no-op: printed previews scroll away.
func (l *Line) ClosePreview() {}

// OpenFile opens path in the editor, or prints it when there is none.
func (l *Line) OpenFile(path string) error {
	return l.opener.Open(context.Background(), path)
}

// ErrorMessage prints msg prefixed with "error:".
func (l *Line) ErrorMessage(msg string) {
	fmt.Fprintf(l.out, "error: %s\n", msg)
}

// StatusMessage prints msg.
func (l *Line) StatusMessage(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l *Line) printFile(path string, data []byte) error {
	fmt.Fprintf(l.out, "--- %s\n%s\n---\n", path, data)
	return nil
}
