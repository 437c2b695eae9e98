// Package models defines the domain types for snipmaker.
package models

import "time"

// Range is a selected region of a document, in byte offsets. A and B are the
// anchor and the caret; either may be the larger one.
type Range struct {
	A int
	B int
}

// Begin returns the smaller offset of the range.
func (r Range) Begin() int {
	return min(r.A, r.B)
}

// End returns the larger offset of the range.
func (r Range) End() int {
	return max(r.A, r.B)
}

// Draft is the set of fields collected while authoring one snippet. It lives
// only for the duration of a single make invocation.
type Draft struct {
	Body        string
	Trigger     string
	Description string
	Scope       string
	FileName    string
}

// SnippetMetadata describes a snippet file found in the snippet directory.
type SnippetMetadata struct {
	Name      string    `json:"name"` // base file name, used as display name
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
