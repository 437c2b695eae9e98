// Package snippet defines the snippet file format: the fixed XML template,
// the file naming convention and the escaping of the reserved "$" character.
package snippet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/models"
)

// Extension is the required extension of every snippet file.
const Extension = ".sublime-snippet"

const template = `<snippet>
<content><![CDATA[
%s
]]></content>
<tabTrigger>%s</tabTrigger>
<description>%s</description>
<scope>%s</scope>
</snippet>`

// fileNameRe mirrors `^\w+\.sublime-snippet$` with a Unicode-aware \w.
var fileNameRe = regexp.MustCompile(`^[\p{L}\p{N}_]+` + regexp.QuoteMeta(Extension) + `$`)

// Render substitutes the four fields into the snippet template, in order.
// Values are inserted verbatim; nothing is XML-escaped.
func Render(body, trigger, description, scope string) string {
	return fmt.Sprintf(template, body, trigger, description, scope)
}

// RenderDraft renders d as the UTF-8 bytes of a snippet file.
func RenderDraft(d models.Draft) []byte {
	return []byte(Render(d.Body, d.Trigger, d.Description, d.Scope))
}

// ValidateFileName checks name against the naming convention.
func ValidateFileName(name string) error {
	if !fileNameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", apperr.ErrInvalidName, name)
	}
	return nil
}

// DefaultFileName returns the file name proposed for a trigger.
func DefaultFileName(trigger string) string {
	return trigger + Extension
}

// EscapeDollar escapes every "$" in s as `\$`, so that literal dollar signs
// in a captured selection are not read as snippet variables.
func EscapeDollar(s string) string {
	return strings.ReplaceAll(s, "$", `\$`)
}

// InvalidNameMessage is shown to the user when a file name is rejected or
// cannot be written.
const InvalidNameMessage = "Please specify a valid file name, i.e. `awesome" + Extension + "`"

// OverrideQuestion is the collision prompt for name.
func OverrideQuestion(name string) string {
	return fmt.Sprintf("Override %s?", name)
}
