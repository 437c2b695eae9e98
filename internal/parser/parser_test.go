package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/starford/snipmaker/internal/snippet"
)

func TestParse_RenderedSnippet(t *testing.T) {
	data := []byte(snippet.Render("if ${1:cond}:\n    pass", "ifp", "If block", "source.python"))
	r, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Result{
		Content:     "if ${1:cond}:\n    pass",
		TabTrigger:  "ifp",
		Description: "If block",
		Scope:       "source.python",
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_CommentedTemplate(t *testing.T) {
	input := []byte(`<snippet>
<!-- the text to insert -->
<content><![CDATA[
hello
]]></content>
<!-- trigger -->
<tabTrigger>hi</tabTrigger>
</snippet>`)
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Content != "hello" || r.TabTrigger != "hi" || r.Description != "" || r.Scope != "" {
		t.Errorf("result = %+v", r)
	}
}

func TestParse_EmptyBody(t *testing.T) {
	r, err := Parse([]byte(snippet.Render("", "t", "", "")))
	if err != nil {
		t.Fatal(err)
	}
	if r.Content != "" {
		t.Errorf("content = %q", r.Content)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "<notasnippet/>", "<snippet><content>"} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}
