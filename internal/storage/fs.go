package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/checksum"
	"github.com/starford/snipmaker/internal/models"
	"github.com/starford/snipmaker/internal/snippet"
)

// FS implements Provider backed by a directory on the local file system.
type FS struct {
	dir     string // absolute path to the snippet directory
	remover Remover
}

// FSOption configures an FS.
type FSOption func(*FS)

// WithRemover sets how Delete disposes of files. The default removes them
// permanently.
func WithRemover(r Remover) FSOption {
	return func(f *FS) {
		f.remover = r
	}
}

// NewFS creates a new FS provider for dir. The directory does not need to
// exist yet; it is created on the first Write.
func NewFS(dir string, opts ...FSOption) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve dir: %w", err)
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("storage: not a directory: %s", abs)
	}
	f := &FS{dir: abs, remover: RemoverFunc(os.Remove)}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Dir returns the absolute snippet directory.
func (f *FS) Dir() string {
	return f.dir
}

// Path resolves name inside the snippet directory. Names carrying a path
// separator or naming the directory itself are rejected.
func (f *FS) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || filepath.IsAbs(name) {
		return "", fmt.Errorf("storage: not a file name: %q", name)
	}
	return filepath.Join(f.dir, name), nil
}

// List scans the directory (non-recursively) for snippet files.
func (f *FS) List() ([]models.SnippetMetadata, error) {
	if _, err := os.Stat(f.dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	names, err := doublestar.Glob(os.DirFS(f.dir), "*"+snippet.Extension, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	sort.Strings(names)

	out := make([]models.SnippetMetadata, 0, len(names))
	for _, name := range names {
		p := filepath.Join(f.dir, name)
		info, err := os.Stat(p)
		if err != nil {
			// Removed between the scan and the stat.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("storage: list: %w", err)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("storage: list: %w", err)
		}
		out = append(out, models.SnippetMetadata{
			Name:      name,
			Path:      p,
			Checksum:  checksum.Sum(data),
			UpdatedAt: info.ModTime(),
		})
	}
	return out, nil
}

// Exists reports whether the named file is present.
func (f *FS) Exists(name string) (bool, error) {
	p, err := f.Path(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("storage: stat %s: %w", name, err)
	}
}

// Read returns the raw bytes of a snippet file.
func (f *FS) Read(name string) ([]byte, error) {
	p, err := f.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("storage: read %s: %w", name, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("storage: read %s: %w", name, err)
	}
	return data, nil
}

// Write replaces content: tmp file → fsync → rename.
func (f *FS) Write(name string, content []byte) error {
	p, err := f.Path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, ".snipmaker-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("storage: chmod: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Delete disposes of a snippet file through the configured Remover.
func (f *FS) Delete(name string) error {
	p, err := f.Path(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", name, apperr.ErrNotFound)
	}
	if err := f.remover.Remove(p); err != nil {
		return fmt.Errorf("storage: delete %s: %w", name, err)
	}
	return nil
}
