package capture

import (
	"fmt"
	"os"

	"github.com/starford/snipmaker/internal/models"
)

// ScopeResolver computes scope names for a position in a file.
type ScopeResolver interface {
	ScopeName(path string, content []byte, offset int) string
}

// FileDocument is a Document over the bytes of a file.
type FileDocument struct {
	path    string
	content []byte
	scopes  ScopeResolver
}

// NewFileDocument wraps content read from path. scopes may be nil, in which
// case every position has an empty scope.
func NewFileDocument(path string, content []byte, scopes ScopeResolver) *FileDocument {
	return &FileDocument{path: path, content: content, scopes: scopes}
}

// ReadFileDocument reads path from disk.
func ReadFileDocument(path string, scopes ScopeResolver) (*FileDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("capture: read %s: %w", path, err)
	}
	return NewFileDocument(path, data, scopes), nil
}

// Path returns the file path of the document.
func (d *FileDocument) Path() string {
	return d.path
}

// Content returns the raw document bytes.
func (d *FileDocument) Content() []byte {
	return d.content
}

// All returns the range covering the whole document.
func (d *FileDocument) All() models.Range {
	return models.Range{A: 0, B: len(d.content)}
}

// Substr returns the text covered by r, clamped to the document.
func (d *FileDocument) Substr(r models.Range) string {
	b, e := d.clamp(r.Begin()), d.clamp(r.End())
	return string(d.content[b:e])
}

// ScopeName returns the scope names at pos.
func (d *FileDocument) ScopeName(pos int) string {
	if d.scopes == nil {
		return ""
	}
	return d.scopes.ScopeName(d.path, d.content, d.clamp(pos))
}

func (d *FileDocument) clamp(pos int) int {
	return max(0, min(pos, len(d.content)))
}
