// Package storage defines the snippet directory abstraction.
package storage

import "github.com/starford/snipmaker/internal/models"

// Provider is the interface for snippet file operations. Names are base file
// names inside the snippet directory.
type Provider interface {
	// Dir returns the absolute snippet directory.
	Dir() string
	// List returns metadata for every snippet file in the directory, sorted by name.
	List() ([]models.SnippetMetadata, error)
	// Path resolves name to an absolute path inside the directory.
	Path(name string) (string, error)
	// Exists reports whether a file called name is present.
	Exists(name string) (bool, error)
	// Read returns the raw bytes of the named file.
	Read(name string) ([]byte, error)
	// Write replaces the named file with content, creating the directory if needed.
	Write(name string, content []byte) error
	// Delete removes the named file according to the configured policy.
	Delete(name string) error
}

// Remover disposes of a file. Implementations decide whether the removal is
// recoverable.
type Remover interface {
	Remove(path string) error
}

// RemoverFunc adapts a function to Remover.
type RemoverFunc func(path string) error

// Remove calls f(path).
func (f RemoverFunc) Remove(path string) error {
	return f(path)
}
