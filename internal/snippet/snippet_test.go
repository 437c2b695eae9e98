package snippet

import (
	"errors"
	"strings"
	"testing"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/models"
)

func TestRender_FieldsInOrder(t *testing.T) {
	got := Render("foo", "foo", "Foo snippet", "source.python")
	want := "<snippet>\n" +
		"<content><![CDATA[\n" +
		"foo\n" +
		"]]></content>\n" +
		"<tabTrigger>foo</tabTrigger>\n" +
		"<description>Foo snippet</description>\n" +
		"<scope>source.python</scope>\n" +
		"</snippet>"
	if got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_Pure(t *testing.T) {
	a := Render("x <y> & z", "t", "d", "s")
	b := Render("x <y> & z", "t", "d", "s")
	if a != b {
		t.Error("Render is not deterministic")
	}
}

func TestRender_NoXMLEscaping(t *testing.T) {
	got := Render("a < b && c > d", "t", "<desc>", "s")
	if !strings.Contains(got, "a < b && c > d") {
		t.Errorf("body was altered: %s", got)
	}
	if !strings.Contains(got, "<description><desc></description>") {
		t.Errorf("description was altered: %s", got)
	}
}

func TestRenderDraft(t *testing.T) {
	d := models.Draft{Body: "b", Trigger: "t", Description: "d", Scope: "s"}
	if string(RenderDraft(d)) != Render("b", "t", "d", "s") {
		t.Error("RenderDraft differs from Render")
	}
}

func TestValidateFileName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"abc.sublime-snippet", true},
		{"a_b_9.sublime-snippet", true},
		{"café.sublime-snippet", true},
		{"abc def.sublime-snippet", false},
		{"abc.sublime-snippet.sublime-snippet", false},
		{".sublime-snippet", false},
		{"abc.snippet", false},
		{"abc.sublime-snippetx", false},
		{"../abc.sublime-snippet", false},
		{"", false},
	}
	for _, tc := range cases {
		err := ValidateFileName(tc.name)
		if tc.ok && err != nil {
			t.Errorf("ValidateFileName(%q) = %v, want nil", tc.name, err)
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ValidateFileName(%q) = nil, want error", tc.name)
			} else if !errors.Is(err, apperr.ErrInvalidName) {
				t.Errorf("ValidateFileName(%q) error %v is not ErrInvalidName", tc.name, err)
			}
		}
	}
}

func TestDefaultFileName(t *testing.T) {
	if got := DefaultFileName("foo"); got != "foo.sublime-snippet" {
		t.Errorf("DefaultFileName = %q", got)
	}
}

func TestEscapeDollar(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"no dollars":   "no dollars",
		"$x":           `\$x`,
		"a $1 and $2":  `a \$1 and \$2`,
		`already \$ok`: `already \\$ok`,
	}
	for in, want := range cases {
		if got := EscapeDollar(in); got != want {
			t.Errorf("EscapeDollar(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOverrideQuestion(t *testing.T) {
	if got := OverrideQuestion("a.sublime-snippet"); got != "Override a.sublime-snippet?" {
		t.Errorf("OverrideQuestion = %q", got)
	}
}
