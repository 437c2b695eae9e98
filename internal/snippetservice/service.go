// Package snippetservice implements the snippet commands on top of a
// storage.Provider and a ui.Host.
package snippetservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/capture"
	"github.com/starford/snipmaker/internal/models"
	"github.com/starford/snipmaker/internal/parser"
	"github.com/starford/snipmaker/internal/promptchain"
	"github.com/starford/snipmaker/internal/snippet"
	"github.com/starford/snipmaker/internal/storage"
	"github.com/starford/snipmaker/internal/ui"
)

// SnippetDetail is a snippet file together with its parsed fields.
type SnippetDetail struct {
	models.SnippetMetadata
	Content string         `json:"content"`
	Fields  *parser.Result `json:"fields,omitempty"`
}

// Service coordinates storage and the user-facing host.
type Service struct {
	store        storage.Provider
	host         ui.Host
	logger       *slog.Logger
	escapeDollar bool
}

// Option configures a Service.
type Option func(*Service)

// WithEscapeDollar sets whether "$" in captured text is escaped.
func WithEscapeDollar(on bool) Option {
	return func(s *Service) {
		s.escapeDollar = on
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a snippet service. host may be nil for callers that
// only use the non-interactive operations.
func NewService(store storage.Provider, host ui.Host, opts ...Option) *Service {
	s := &Service{
		store:        store,
		host:         host,
		logger:       slog.New(slog.DiscardHandler),
		escapeDollar: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Make captures sel from doc and runs the prompt chain. It returns the path
// of the written file, or apperr.ErrCanceled if the user dismissed a prompt.
func (s *Service) Make(ctx context.Context, doc capture.Document, sel []models.Range) (string, error) {
	if s.host == nil {
		return "", errors.New("snippetservice: make needs an interactive host")
	}
	draft := capture.Draft(doc, sel, s.escapeDollar)
	s.logger.Debug("snippet captured",
		slog.Int("ranges", len(sel)),
		slog.Int("body_bytes", len(draft.Body)),
		slog.String("scope", draft.Scope))
	return promptchain.New(s.host, s.store, s.logger, draft).Run(ctx)
}

// List returns every snippet file, sorted by name.
func (s *Service) List(_ context.Context) ([]models.SnippetMetadata, error) {
	return s.store.List()
}

// Get reads one snippet file and parses its fields. Files that are not
// well-formed snippets are returned without fields.
func (s *Service) Get(_ context.Context, name string) (*SnippetDetail, error) {
	data, err := s.store.Read(name)
	if err != nil {
		return nil, err
	}
	path, err := s.store.Path(name)
	if err != nil {
		return nil, err
	}
	d := &SnippetDetail{
		SnippetMetadata: models.SnippetMetadata{Name: name, Path: path},
		Content:         string(data),
	}
	if res, err := parser.Parse(data); err == nil {
		d.Fields = res
	} else {
		s.logger.Debug("snippet not parseable", slog.String("name", name), slog.String("error", err.Error()))
	}
	return d, nil
}

// Save writes draft without prompting. The body is escaped like a captured
// selection. An existing file is replaced only when overwrite is set.
func (s *Service) Save(_ context.Context, draft models.Draft, overwrite bool) (string, error) {
	if draft.FileName == "" {
		draft.FileName = snippet.DefaultFileName(draft.Trigger)
	}
	if err := snippet.ValidateFileName(draft.FileName); err != nil {
		return "", err
	}
	if s.escapeDollar {
		draft.Body = snippet.EscapeDollar(draft.Body)
	}
	exists, err := s.store.Exists(draft.FileName)
	if err != nil {
		return "", err
	}
	if exists && !overwrite {
		return "", fmt.Errorf("%s: %w", draft.FileName, apperr.ErrAlreadyExists)
	}
	if err := s.store.Write(draft.FileName, snippet.RenderDraft(draft)); err != nil {
		return "", err
	}
	path, _ := s.store.Path(draft.FileName)
	s.logger.Info("snippet written", slog.String("path", path))
	return path, nil
}

// Remove deletes one snippet file by name.
func (s *Service) Remove(_ context.Context, name string) error {
	if err := s.store.Delete(name); err != nil {
		return err
	}
	s.logger.Info("snippet deleted", slog.String("name", name))
	return nil
}

// Edit lets the user pick a snippet and opens it. Highlighted entries are
// previewed; the preview is closed when the list goes away.
func (s *Service) Edit(ctx context.Context) error {
	items, idx, err := s.pick(ctx)
	if err != nil {
		return err
	}
	s.host.ClosePreview()
	if idx < 0 {
		return nil
	}
	return s.host.OpenFile(items[idx].Path)
}

// Delete lets the user pick a snippet and removes it. Dismissing the list
// does nothing.
func (s *Service) Delete(ctx context.Context) error {
	items, idx, err := s.pick(ctx)
	if err != nil {
		return err
	}
	s.host.ClosePreview()
	if idx < 0 {
		return nil
	}
	entry := items[idx]
	if err := s.Remove(ctx, entry.Name); err != nil {
		s.host.ErrorMessage(err.Error())
		return err
	}
	s.host.StatusMessage(entry.Name + " deleted")
	return nil
}

func (s *Service) pick(ctx context.Context) ([]models.SnippetMetadata, int, error) {
	if s.host == nil {
		return nil, -1, errors.New("snippetservice: picking needs an interactive host")
	}
	items, err := s.store.List()
	if err != nil {
		return nil, -1, err
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	idx, err := s.host.Pick(ctx, names, func(i int) {
		if i < 0 || i >= len(items) {
			return
		}
		if err := s.host.Preview(items[i].Path); err != nil {
			s.logger.Debug("preview failed", slog.String("path", items[i].Path), slog.String("error", err.Error()))
		}
	})
	if err != nil {
		if errors.Is(err, apperr.ErrCanceled) {
			return items, -1, nil
		}
		return nil, -1, err
	}
	if idx >= len(items) {
		return nil, -1, fmt.Errorf("snippetservice: pick index %d out of range", idx)
	}
	return items, idx, nil
}
