package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

var errNoName = errors.New("name required")

func (s *sample) Validate() error {
	if s.Name == "" {
		return errNoName
	}
	return nil
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "from-env")
	p := writeFile(t, "name: ${SAMPLE_NAME}\ncount: 3\n")

	got := sample{Count: 1}
	if err := Load(p, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sample{Name: "from-env", Count: 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_KeepsDefaults(t *testing.T) {
	p := writeFile(t, "name: x\n")
	got := sample{Count: 7}
	if err := Load(p, &got); err != nil {
		t.Fatal(err)
	}
	if got.Count != 7 {
		t.Errorf("Count = %d, want default 7", got.Count)
	}
}

func TestLoad_Validates(t *testing.T) {
	p := writeFile(t, "count: 2\n")
	var got sample
	if err := Load(p, &got); !errors.Is(err, errNoName) {
		t.Fatalf("err = %v, want errNoName", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var got sample
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &got); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOptional(t *testing.T) {
	got := sample{Name: "default"}
	read, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &got)
	if err != nil || read {
		t.Fatalf("missing file: read=%v err=%v", read, err)
	}
	if got.Name != "default" {
		t.Errorf("defaults changed: %+v", got)
	}

	var empty sample
	if _, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &empty); !errors.Is(err, errNoName) {
		t.Errorf("defaults should still be validated, err = %v", err)
	}

	p := writeFile(t, "name: file\n")
	read, err = LoadOptional(p, &got)
	if err != nil || !read || got.Name != "file" {
		t.Fatalf("present file: read=%v err=%v got=%+v", read, err, got)
	}
}
