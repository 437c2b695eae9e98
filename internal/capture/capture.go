// Package capture reads the selected text and the scope at the selection
// from a document.
package capture

import (
	"strings"

	"github.com/starford/snipmaker/internal/models"
	"github.com/starford/snipmaker/internal/snippet"
)

// Document is the source of a capture.
type Document interface {
	// Substr returns the text covered by r.
	Substr(r models.Range) string
	// ScopeName returns the space-separated scope names at offset pos.
	ScopeName(pos int) string
}

// Capture joins the text of every range in sel with "\n", in selection order,
// and derives the default scope from the start of the first range.
func Capture(doc Document, sel []models.Range) (body, scope string) {
	if len(sel) == 0 {
		return "", ""
	}
	parts := make([]string, len(sel))
	for i, r := range sel {
		parts[i] = doc.Substr(r)
	}
	return strings.Join(parts, "\n"), NormalizeScope(doc.ScopeName(sel[0].Begin()))
}

// NormalizeScope trims s and turns each inner space into ", ".
func NormalizeScope(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", ", ")
}

// Draft captures sel from doc into a new draft. escapeDollar escapes every
// "$" in the body.
func Draft(doc Document, sel []models.Range, escapeDollar bool) models.Draft {
	body, scope := Capture(doc, sel)
	if escapeDollar {
		body = snippet.EscapeDollar(body)
	}
	return models.Draft{Body: body, Scope: scope}
}
