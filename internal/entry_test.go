package internal

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/snipmaker/internal/snippet"
	"github.com/starford/snipmaker/internal/testutil"
	"github.com/starford/snipmaker/internal/trash"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.Snippets.Root = t.TempDir()
	cfg.Snippets.DeletePolicy = trash.PolicyPermanent
	return cfg
}

func testOptions(cfg *Config, host *testutil.ScriptedHost, out *bytes.Buffer) []Option {
	opts := []Option{
		WithConfig(cfg),
		WithStdio(strings.NewReader(""), out, &bytes.Buffer{}),
		WithLogger(slog.New(slog.DiscardHandler)),
	}
	if host != nil {
		opts = append(opts, WithHost(host))
	}
	return opts
}

func writeSource(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRequiresConfig(t *testing.T) {
	if err := ListSnippets(context.Background(), false); err == nil {
		t.Fatal("expected error without config")
	}
}

func TestMakeSnippet_WritesFile(t *testing.T) {
	cfg := testConfig(t)
	src := writeSource(t, "a.py", "print('$x')\nother\n")
	host := &testutil.ScriptedHost{Inputs: []testutil.Answer{
		testutil.Say("pr"), testutil.Say("Print"), testutil.Say("source.python"), testutil.Say("pr.sublime-snippet"),
	}}

	err := MakeSnippet(context.Background(), src, []string{"1:1-2:1"}, testOptions(cfg, host, &bytes.Buffer{})...)
	if err != nil {
		t.Fatalf("MakeSnippet: %v", err)
	}

	path := filepath.Join(cfg.Snippets.Dir(), "pr.sublime-snippet")
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := snippet.Render(`print('\$x')`+"\n", "pr", "Print", "source.python")
	if string(got) != want {
		t.Errorf("content =\n%s\nwant\n%s", got, want)
	}
	if !strings.HasPrefix(host.Prompts[2].Initial, "source.python") {
		t.Errorf("scope default = %q", host.Prompts[2].Initial)
	}
	if len(host.Opened) != 1 || host.Opened[0] != path {
		t.Errorf("opened = %v", host.Opened)
	}
}

func TestMakeSnippet_CancelIsQuiet(t *testing.T) {
	cfg := testConfig(t)
	src := writeSource(t, "a.txt", "hello")
	host := &testutil.ScriptedHost{Inputs: []testutil.Answer{testutil.Cancel()}}

	if err := MakeSnippet(context.Background(), src, nil, testOptions(cfg, host, &bytes.Buffer{})...); err != nil {
		t.Fatalf("cancel should not be an error: %v", err)
	}
	if _, err := os.Stat(cfg.Snippets.Dir()); !os.IsNotExist(err) {
		t.Errorf("snippet dir should not exist after cancel, err = %v", err)
	}
}

func TestMakeSnippet_MissingFile(t *testing.T) {
	cfg := testConfig(t)
	err := MakeSnippet(context.Background(), filepath.Join(t.TempDir(), "nope"), nil,
		testOptions(cfg, &testutil.ScriptedHost{}, &bytes.Buffer{})...)
	if err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func seedSnippet(t *testing.T, cfg *Config, name, trigger string) {
	t.Helper()
	if err := os.MkdirAll(cfg.Snippets.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	body := snippet.Render("body", trigger, "desc "+trigger, "source.go")
	if err := os.WriteFile(filepath.Join(cfg.Snippets.Dir(), name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListSnippets(t *testing.T) {
	cfg := testConfig(t)
	seedSnippet(t, cfg, "b.sublime-snippet", "bee")
	seedSnippet(t, cfg, "a.sublime-snippet", "ay")

	var out bytes.Buffer
	if err := ListSnippets(context.Background(), false, testOptions(cfg, nil, &out)...); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "a.sublime-snippet\t") || !strings.HasPrefix(lines[1], "b.sublime-snippet\t") {
		t.Errorf("list output:\n%s", out.String())
	}

	out.Reset()
	if err := ListSnippets(context.Background(), true, testOptions(cfg, nil, &out)...); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "a.sublime-snippet\tay\tsource.go\tdesc ay\t") {
		t.Errorf("long output:\n%s", out.String())
	}
}

func TestListSnippets_EmptyLibrary(t *testing.T) {
	var out bytes.Buffer
	if err := ListSnippets(context.Background(), false, testOptions(testConfig(t), nil, &out)...); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestDeleteSnippet(t *testing.T) {
	cfg := testConfig(t)
	seedSnippet(t, cfg, "a.sublime-snippet", "ay")
	host := &testutil.ScriptedHost{Picks: []testutil.PickScript{{Index: 0}}}

	if err := DeleteSnippet(context.Background(), testOptions(cfg, host, &bytes.Buffer{})...); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Snippets.Dir(), "a.sublime-snippet")); !os.IsNotExist(err) {
		t.Errorf("file should be gone, err = %v", err)
	}
	if len(host.Statuses) != 1 || host.Statuses[0] != "a.sublime-snippet deleted" {
		t.Errorf("statuses = %v", host.Statuses)
	}
}

func TestEditSnippet(t *testing.T) {
	cfg := testConfig(t)
	seedSnippet(t, cfg, "a.sublime-snippet", "ay")
	host := &testutil.ScriptedHost{Picks: []testutil.PickScript{{Highlight: []int{0}, Index: 0}}}

	if err := EditSnippet(context.Background(), testOptions(cfg, host, &bytes.Buffer{})...); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(cfg.Snippets.Dir(), "a.sublime-snippet")
	if len(host.Opened) != 1 || host.Opened[0] != want {
		t.Errorf("opened = %v, want %s", host.Opened, want)
	}
	if len(host.Previews) != 1 {
		t.Errorf("previews = %v", host.Previews)
	}
}
