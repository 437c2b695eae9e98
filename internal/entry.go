// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/capture"
	"github.com/starford/snipmaker/internal/mcpserver"
	"github.com/starford/snipmaker/internal/models"
	"github.com/starford/snipmaker/internal/scope"
	"github.com/starford/snipmaker/internal/snippetservice"
	"github.com/starford/snipmaker/internal/storage"
	"github.com/starford/snipmaker/internal/trash"
	"github.com/starford/snipmaker/internal/tui"
	"github.com/starford/snipmaker/internal/ui"
	"github.com/starford/snipmaker/internal/watch"
)

func newApplication(opts ...Option) (*application, error) {
	app := &application{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		version: "dev",
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Structured JSON logs go to stderr; stdout carries prompts and MCP frames.
	if app.logger == nil {
		app.logger = slog.New(slog.NewJSONHandler(app.stderr, &slog.HandlerOptions{
			Level: app.config.App.LogLevel,
		}))
		slog.SetDefault(app.logger)
	}

	app.logger.Debug("Configuration loaded",
		slog.String("snippet_dir", app.config.Snippets.Dir()),
		slog.String("delete_policy", app.config.Snippets.DeletePolicy),
		slog.Bool("escape_dollar", app.config.Snippets.AlwaysEscapeDollarSign),
		slog.String("log_level", app.config.App.LogLevel.String()))

	return app, nil
}

func (a *application) store() (*storage.FS, error) {
	remover, err := trash.New(a.config.Snippets.DeletePolicy)
	if err != nil {
		return nil, fmt.Errorf("init delete policy: %w", err)
	}
	store, err := storage.NewFS(a.config.Snippets.Dir(), storage.WithRemover(remover))
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	return store, nil
}

// uiHost returns the configured host, the terminal UI when both standard
// streams are terminals, or line prompts otherwise.
func (a *application) uiHost() ui.Host {
	if a.host != nil {
		return a.host
	}
	opener := &ui.Opener{
		Editor: a.config.App.Editor,
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
	}
	in, inOK := a.stdin.(*os.File)
	out, outOK := a.stdout.(*os.File)
	if inOK && outOK && tui.IsInteractive(in, out) {
		return tui.New(in, out, opener)
	}
	return ui.NewLine(a.stdin, a.stdout, opener)
}

func (a *application) service(host ui.Host) (*snippetservice.Service, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return snippetservice.NewService(store, host,
		snippetservice.WithEscapeDollar(a.config.Snippets.AlwaysEscapeDollarSign),
		snippetservice.WithLogger(a.logger),
	), nil
}

// interactive runs fn against a service bound to the terminal host. A
// dismissed prompt ends the command quietly.
func interactive(opts []Option, fn func(*application, *snippetservice.Service) error) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	svc, err := app.service(app.uiHost())
	if err != nil {
		return err
	}
	if err := fn(app, svc); err != nil {
		if errors.Is(err, apperr.ErrCanceled) {
			app.logger.Debug("canceled by user")
			return nil
		}
		return err
	}
	return nil
}

// MakeSnippet captures the selected ranges of file and walks the user
// through the trigger, description, scope and file name prompts. selects are
// range specs as accepted by capture.ParseRange; none selects the whole file.
func MakeSnippet(ctx context.Context, file string, selects []string, opts ...Option) error {
	return interactive(opts, func(app *application, svc *snippetservice.Service) error {
		doc, err := capture.ReadFileDocument(file, scope.NewResolver(app.logger))
		if err != nil {
			return err
		}
		sel := []models.Range{doc.All()}
		if len(selects) > 0 {
			if sel, err = capture.ParseRanges(doc.Content(), selects); err != nil {
				return err
			}
		}
		path, err := svc.Make(ctx, doc, sel)
		if err != nil {
			return err
		}
		app.logger.Info("snippet written", slog.String("path", path))
		return nil
	})
}

// EditSnippet lets the user pick a snippet and opens it in the editor.
func EditSnippet(ctx context.Context, opts ...Option) error {
	return interactive(opts, func(_ *application, svc *snippetservice.Service) error {
		return svc.Edit(ctx)
	})
}

// DeleteSnippet lets the user pick a snippet and removes it according to the
// configured delete policy.
func DeleteSnippet(ctx context.Context, opts ...Option) error {
	return interactive(opts, func(_ *application, svc *snippetservice.Service) error {
		return svc.Delete(ctx)
	})
}

// ListSnippets prints one line per snippet file: name and path, and with
// long also the trigger, scope and description read back from the file.
func ListSnippets(ctx context.Context, long bool, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	svc, err := app.service(nil)
	if err != nil {
		return err
	}
	items, err := svc.List(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		if !long {
			fmt.Fprintf(app.stdout, "%s\t%s\n", it.Name, it.Path)
			continue
		}
		var trigger, scopeSel, description string
		if d, err := svc.Get(ctx, it.Name); err != nil {
			app.logger.Warn("read snippet failed", slog.String("name", it.Name), slog.String("error", err.Error()))
		} else if d.Fields != nil {
			trigger, scopeSel, description = d.Fields.TabTrigger, d.Fields.Scope, d.Fields.Description
		}
		fmt.Fprintf(app.stdout, "%s\t%s\t%s\t%s\t%s\n", it.Name, trigger, scopeSel, description, it.Path)
	}
	return nil
}

// Watch reports changes to snippet files until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func Watch(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	logger := app.logger
	dir := app.config.Snippets.Dir()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return watch.Watch(gCtx, dir, logger, func(kind, name string) {
			fmt.Fprintf(app.stdout, "%s\t%s\n", kind, name)
		})
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Watcher error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// ServeMCP serves the snippet tools over the MCP stdio transport.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	svc, err := app.service(nil)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.logger.Info("MCP server starting", slog.String("snippet_dir", app.config.Snippets.Dir()))
	return mcpserver.New(svc, app.version).Serve(ctx, app.stdin, app.stdout, app.logger)
}
