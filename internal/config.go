package internal

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/snipmaker/internal/trash"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Snippets SnippetsConfig    `yaml:"snippets"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Snippets.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	// Editor opens snippet files; empty falls back to $VISUAL, then $EDITOR.
	Editor string `yaml:"editor"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// SnippetsConfig controls where snippets live and how they are written.
type SnippetsConfig struct {
	Root                   string `yaml:"root"`
	Location               string `yaml:"snippet_location"`
	AlwaysEscapeDollarSign bool   `yaml:"always_escape_dollar_sign"`
	DeletePolicy           string `yaml:"delete_policy"`
}

var errLocationSeparator = errors.New("must be a single directory name")

// Validate validates the snippets configuration.
func (c *SnippetsConfig) Validate() error {
	if c.DeletePolicy == "" {
		c.DeletePolicy = trash.PolicyTrash
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Location,
			validation.Required,
			validation.By(func(v any) error {
				s, _ := v.(string)
				if strings.ContainsAny(s, `/\`) || s == "." || s == ".." {
					return errLocationSeparator
				}
				return nil
			}),
		),
		validation.Field(&c.DeletePolicy, validation.In(trash.PolicyTrash, trash.PolicyPermanent)),
	)
}

// Dir returns the snippet directory, <root>/<snippet_location>.
func (c *SnippetsConfig) Dir() string {
	return filepath.Join(c.Root, c.Location)
}

// DefaultRoot returns Sublime Text's Packages/User directory for the current
// user, or "" when the user config directory is unknown.
func DefaultRoot() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	app := "Sublime Text"
	if runtime.GOOS == "linux" {
		app = "sublime-text"
	}
	return filepath.Join(base, app, "Packages", "User")
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Snippets: SnippetsConfig{
			Root:                   DefaultRoot(),
			Location:               "Snippets",
			AlwaysEscapeDollarSign: true,
			DeletePolicy:           trash.PolicyTrash,
		},
	}
}
