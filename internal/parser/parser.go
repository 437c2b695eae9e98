// Package parser reads the fields back out of a snippet file.
package parser

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Result holds the fields of a parsed snippet file.
type Result struct {
	Content     string `json:"content"`
	TabTrigger  string `json:"tab_trigger"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
}

type document struct {
	XMLName     xml.Name `xml:"snippet"`
	Content     string   `xml:"content"`
	TabTrigger  string   `xml:"tabTrigger"`
	Description string   `xml:"description"`
	Scope       string   `xml:"scope"`
}

// Parse decodes a snippet file. The newline that the template puts on each
// side of the content is removed.
func Parse(data []byte) (*Result, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	content := strings.TrimPrefix(doc.Content, "\n")
	content = strings.TrimSuffix(content, "\n")
	return &Result{
		Content:     content,
		TabTrigger:  strings.TrimSpace(doc.TabTrigger),
		Description: strings.TrimSpace(doc.Description),
		Scope:       strings.TrimSpace(doc.Scope),
	}, nil
}
