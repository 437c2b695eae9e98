package scope

import (
	"strings"
	"testing"
)

func TestScopeName_GoFunctionBody(t *testing.T) {
	src := []byte("package main\n\nfunc f() {\n\tx := 1\n\t_ = x\n}\n")
	offset := strings.Index(string(src), "x :=")

	got := NewResolver(nil).ScopeName("main.go", src, offset)
	want := "source.go meta.function_declaration.go meta.block.go "
	if !strings.HasPrefix(got, want) {
		t.Errorf("ScopeName = %q, want prefix %q", got, want)
	}
	if !strings.HasSuffix(got, " ") {
		t.Errorf("ScopeName = %q, want trailing space", got)
	}
}

func TestScopeName_TopLevel(t *testing.T) {
	src := []byte("x = 1\n\n\ndef f():\n    pass\n")
	got := NewResolver(nil).ScopeName("a.py", src, 6)
	if got != "source.python " {
		t.Errorf("ScopeName between statements = %q", got)
	}
}

func TestScopeName_PythonFunction(t *testing.T) {
	src := []byte("def f():\n    return 1\n")
	offset := strings.Index(string(src), "return")
	got := NewResolver(nil).ScopeName("a.py", src, offset)
	if !strings.HasPrefix(got, "source.python meta.function_definition.python ") {
		t.Errorf("ScopeName = %q", got)
	}
}

func TestScopeName_NoGrammar(t *testing.T) {
	got := NewResolver(nil).ScopeName("notes.md", []byte("# hi"), 1)
	if got != "text.html.markdown " {
		t.Errorf("ScopeName = %q", got)
	}
}

func TestScopeName_UnknownExtension(t *testing.T) {
	got := NewResolver(nil).ScopeName("data.weird", []byte("?"), 0)
	if got != "text.plain " {
		t.Errorf("ScopeName = %q", got)
	}
}

func TestBaseScope(t *testing.T) {
	cases := map[string]string{
		"main.go":    "source.go",
		"APP.PY":     "source.python",
		"index.ts":   "source.ts",
		"lib.rs":     "source.rust",
		"Makefile":   PlainText,
		"notes.yaml": "source.yaml",
	}
	for path, want := range cases {
		if got := BaseScope(path); got != want {
			t.Errorf("BaseScope(%q) = %q, want %q", path, got, want)
		}
	}
}
