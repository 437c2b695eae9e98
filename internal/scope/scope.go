// Package scope names the syntax context at a position in a source file, in
// the dotted "source.go meta.function_declaration.go" style used by snippet
// scope selectors.
package scope

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// PlainText is the scope of files whose type is unknown.
const PlainText = "text.plain"

type language struct {
	base    string // base scope, e.g. "source.go"
	suffix  string // appended to every nested scope, e.g. "go"
	grammar func() *sitter.Language
}

var languages = map[string]language{
	".go":   {base: "source.go", suffix: "go", grammar: golang.GetLanguage},
	".py":   {base: "source.python", suffix: "python", grammar: python.GetLanguage},
	".js":   {base: "source.js", suffix: "js", grammar: javascript.GetLanguage},
	".mjs":  {base: "source.js", suffix: "js", grammar: javascript.GetLanguage},
	".ts":   {base: "source.ts", suffix: "ts", grammar: typescript.GetLanguage},
	".rs":   {base: "source.rust", suffix: "rust", grammar: rust.GetLanguage},
	".c":    {base: "source.c", suffix: "c"},
	".h":    {base: "source.c", suffix: "c"},
	".cpp":  {base: "source.c++", suffix: "c++"},
	".java": {base: "source.java", suffix: "java"},
	".rb":   {base: "source.ruby", suffix: "ruby"},
	".sh":   {base: "source.shell.bash", suffix: "shell.bash"},
	".json": {base: "source.json", suffix: "json"},
	".yaml": {base: "source.yaml", suffix: "yaml"},
	".yml":  {base: "source.yaml", suffix: "yaml"},
	".css":  {base: "source.css", suffix: "css"},
	".html": {base: "text.html.basic", suffix: "html"},
	".xml":  {base: "text.xml", suffix: "xml"},
	".md":   {base: "text.html.markdown", suffix: "markdown"},
	".txt":  {base: PlainText, suffix: "plain"},
}

// Resolver computes scope names with tree-sitter for the languages it has a
// grammar for, and from the file extension alone for the rest.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver returns a Resolver. logger may be nil.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{logger: logger}
}

// BaseScope returns the top-level scope for a file path.
func BaseScope(path string) string {
	if lang, ok := languages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang.base
	}
	return PlainText
}

// ScopeName returns the scopes enclosing offset, outermost first, separated
// and terminated by a space.
func (r *Resolver) ScopeName(path string, content []byte, offset int) string {
	lang, ok := languages[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return PlainText + " "
	}
	var b strings.Builder
	b.WriteString(lang.base)
	b.WriteByte(' ')
	if lang.grammar == nil {
		return b.String()
	}

	nodes, err := r.enclosing(lang, content, offset)
	if err != nil {
		r.logger.Warn("scope: parse failed", slog.String("path", path), slog.String("error", err.Error()))
		return b.String()
	}
	for _, n := range nodes {
		b.WriteString("meta.")
		b.WriteString(n)
		b.WriteByte('.')
		b.WriteString(lang.suffix)
		b.WriteByte(' ')
	}
	return b.String()
}

// enclosing returns the types of the named nodes below the root that contain
// offset, outermost first.
func (r *Resolver) enclosing(lang language, content []byte, offset int) ([]string, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang.grammar())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var out []string
	pos := uint32(offset)
	node := tree.RootNode()
	for {
		next := childAt(node, pos)
		if next == nil {
			return out, nil
		}
		if next.IsNamed() {
			out = append(out, next.Type())
		}
		node = next
	}
}

// childAt returns the child of n whose span holds pos. A position at the end
// of a node counts as inside it only when no following sibling starts there.
func childAt(n *sitter.Node, pos uint32) *sitter.Node {
	var match *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		if c.StartByte() <= pos && pos < c.EndByte() {
			return c
		}
		if c.EndByte() == pos && c.StartByte() < pos {
			match = c
		}
	}
	return match
}
