package internal

import (
	"io"
	"log/slog"

	"github.com/starford/snipmaker/internal/ui"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	host    ui.Host
	logger  *slog.Logger
	version string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithHost replaces the terminal host picked from the standard streams.
func WithHost(h ui.Host) Option {
	return func(a *application) {
		a.host = h
	}
}

// WithStdio sets the streams used for prompts, command output and logs.
func WithStdio(in io.Reader, out, errOut io.Writer) Option {
	return func(a *application) {
		a.stdin = in
		a.stdout = out
		a.stderr = errOut
	}
}

// WithLogger replaces the JSON logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}

// WithVersion sets the version reported to MCP clients.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}
