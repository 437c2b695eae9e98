package capture

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/starford/snipmaker/internal/models"
)

type fixedScopes map[int]string

func (f fixedScopes) ScopeName(_ string, _ []byte, offset int) string {
	return f[offset]
}

func TestCapture_JoinsRangesInOrder(t *testing.T) {
	doc := NewFileDocument("a.py", []byte("alpha beta gamma"), nil)
	sel := []models.Range{{A: 11, B: 16}, {A: 0, B: 5}, {A: 10, B: 6}}
	body, _ := Capture(doc, sel)
	if body != "gamma\nalpha\nbeta" {
		t.Errorf("body = %q", body)
	}
}

func TestCapture_ScopeAtFirstRangeStart(t *testing.T) {
	scopes := fixedScopes{
		3: " source.python meta.function.python  ",
		9: "text.plain",
	}
	doc := NewFileDocument("a.py", []byte("0123456789"), scopes)
	_, scope := Capture(doc, []models.Range{{A: 6, B: 3}, {A: 9, B: 9}})
	if scope != "source.python, meta.function.python" {
		t.Errorf("scope = %q", scope)
	}
}

func TestCapture_EmptySelection(t *testing.T) {
	doc := NewFileDocument("a.py", []byte("abc"), fixedScopes{0: "source.python"})
	body, scope := Capture(doc, nil)
	if body != "" || scope != "" {
		t.Errorf("Capture(nil) = %q, %q", body, scope)
	}
}

func TestCapture_EmptyRange(t *testing.T) {
	doc := NewFileDocument("a.py", []byte("abc"), nil)
	body, _ := Capture(doc, []models.Range{{A: 1, B: 1}, {A: 0, B: 3}})
	if body != "\nabc" {
		t.Errorf("body = %q", body)
	}
}

func TestDraft_EscapesDollar(t *testing.T) {
	doc := NewFileDocument("a.sh", []byte(`echo $HOME`), nil)
	all := []models.Range{doc.All()}

	d := Draft(doc, all, true)
	if d.Body != `echo \$HOME` {
		t.Errorf("escaped body = %q", d.Body)
	}
	d = Draft(doc, all, false)
	if d.Body != `echo $HOME` {
		t.Errorf("raw body = %q", d.Body)
	}
}

func TestFileDocument_SubstrClamps(t *testing.T) {
	doc := NewFileDocument("x", []byte("hello"), nil)
	if got := doc.Substr(models.Range{A: -3, B: 99}); got != "hello" {
		t.Errorf("Substr = %q", got)
	}
}

func TestNormalizeScope(t *testing.T) {
	if got := NormalizeScope("  source.go meta.block.go "); got != "source.go, meta.block.go" {
		t.Errorf("NormalizeScope = %q", got)
	}
}

func TestParseRange(t *testing.T) {
	content := []byte("line one\nline two\nthree")
	cases := []struct {
		spec string
		want models.Range
	}{
		{"0-4", models.Range{A: 0, B: 4}},
		{"8-0", models.Range{A: 8, B: 0}},
		{"2:1-2:5", models.Range{A: 9, B: 13}},
		{"1:1-3:6", models.Range{A: 0, B: 23}},
		{"3:99-3:99", models.Range{A: 23, B: 23}},
		{"2:", models.Range{A: 9, B: 17}},
		{"3:", models.Range{A: 18, B: 23}},
	}
	for _, tc := range cases {
		got, err := ParseRange(content, tc.spec)
		if err != nil {
			t.Errorf("ParseRange(%q): %v", tc.spec, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseRange(%q) mismatch (-want +got):\n%s", tc.spec, diff)
		}
	}
}

func TestParseRange_Errors(t *testing.T) {
	content := []byte("ab\ncd")
	for _, spec := range []string{"", "5", "a-b", "0-99", "9:1-9:2", "1:0-1:1", "0:1-1:1", "x:"} {
		if _, err := ParseRange(content, spec); err == nil {
			t.Errorf("ParseRange(%q) should fail", spec)
		}
	}
}

func TestParseRanges(t *testing.T) {
	content := []byte("abcdef")
	got, err := ParseRanges(content, []string{"0-1", "2-3"})
	if err != nil {
		t.Fatal(err)
	}
	want := []models.Range{{A: 0, B: 1}, {A: 2, B: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRanges mismatch (-want +got):\n%s", diff)
	}
}
