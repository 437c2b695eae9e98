// Package trash implements the delete policies for snippet files: moving
// them to the user's trash can, or removing them for good.
package trash

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Delete policies.
const (
	PolicyTrash     = "trash"
	PolicyPermanent = "permanent"
)

// ErrUnsupported is returned when the platform has no known trash location.
var ErrUnsupported = errors.New("trash: not supported on this platform, set snippets.delete_policy to permanent")

// Remover disposes of a file.
type Remover interface {
	Remove(path string) error
}

// New returns the Remover for a policy name.
func New(policy string) (Remover, error) {
	switch policy {
	case PolicyPermanent:
		return Permanent{}, nil
	case PolicyTrash, "":
		return NewCan(DefaultDir())
	default:
		return nil, fmt.Errorf("trash: unknown policy %q", policy)
	}
}

// Permanent removes files without a way back.
type Permanent struct{}

// Remove deletes path.
func (Permanent) Remove(path string) error {
	return os.Remove(path)
}

// Can moves files into a trash directory. With a freedesktop.org layout it
// also writes the .trashinfo record that file managers use to restore them.
type Can struct {
	dir         string
	freedesktop bool
	now         func() time.Time
}

// DefaultDir returns the user's trash directory for the running platform,
// or "" if there is none.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".Trash")
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "Trash")
		}
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".local", "share", "Trash")
	default:
		return ""
	}
}

// NewCan returns a Can that trashes into dir.
func NewCan(dir string) (*Can, error) {
	if dir == "" {
		return nil, ErrUnsupported
	}
	return &Can{
		dir:         dir,
		freedesktop: runtime.GOOS != "darwin",
		now:         time.Now,
	}, nil
}

// Dir returns the trash directory.
func (c *Can) Dir() string {
	return c.dir
}

// Remove moves path into the trash.
func (c *Can) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("trash: resolve %s: %w", path, err)
	}
	filesDir := c.dir
	if c.freedesktop {
		filesDir = filepath.Join(c.dir, "files")
		if err := os.MkdirAll(filepath.Join(c.dir, "info"), 0o700); err != nil {
			return fmt.Errorf("trash: mkdir: %w", err)
		}
	}
	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return fmt.Errorf("trash: mkdir: %w", err)
	}

	name, err := c.reserve(filesDir, abs)
	if err != nil {
		return err
	}
	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		if c.freedesktop {
			_ = os.Remove(c.infoPath(name))
		}
		return fmt.Errorf("trash: move %s: %w", path, err)
	}
	return nil
}

// reserve picks a name that is free in filesDir. For freedesktop trash the
// .trashinfo file is created exclusively, which claims the name.
func (c *Can) reserve(filesDir, orig string) (string, error) {
	base := filepath.Base(orig)
	name := base
	for range 8 {
		if _, err := os.Lstat(filepath.Join(filesDir, name)); err == nil {
			name = uniqueName(base)
			continue
		}
		if !c.freedesktop {
			return name, nil
		}
		f, err := os.OpenFile(c.infoPath(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if errors.Is(err, os.ErrExist) {
			name = uniqueName(base)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("trash: create info: %w", err)
		}
		_, werr := f.WriteString(c.info(orig))
		cerr := f.Close()
		if werr != nil || cerr != nil {
			_ = os.Remove(c.infoPath(name))
			return "", fmt.Errorf("trash: write info: %w", errors.Join(werr, cerr))
		}
		return name, nil
	}
	return "", fmt.Errorf("trash: no free name for %s", base)
}

func (c *Can) infoPath(name string) string {
	return filepath.Join(c.dir, "info", name+".trashinfo")
}

// info renders the .trashinfo record for a file originally at orig.
func (c *Can) info(orig string) string {
	return "[Trash Info]\n" +
		"Path=" + escapePath(orig) + "\n" +
		"DeletionDate=" + c.now().Format("2006-01-02T15:04:05") + "\n"
}

func uniqueName(base string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + "." + uuid.NewString()[:8] + ext
}

// escapePath percent-encodes an absolute path the way .trashinfo expects,
// keeping the separators.
func escapePath(p string) string {
	parts := strings.Split(filepath.ToSlash(p), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
