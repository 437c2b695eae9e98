package capture

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/starford/snipmaker/internal/models"
)

// ParseRange parses a selection spec "START-END" against content. Each end is
// either a byte offset ("42") or a 1-based line and column ("3:1"). A spec
// without "-" selects the whole line named by a bare line number ("7:").
func ParseRange(content []byte, spec string) (models.Range, error) {
	spec = strings.TrimSpace(spec)
	if line, ok := strings.CutSuffix(spec, ":"); ok && !strings.Contains(line, "-") {
		n, err := strconv.Atoi(line)
		if err != nil {
			return models.Range{}, fmt.Errorf("capture: bad line %q", spec)
		}
		b, err := lineStart(content, n)
		if err != nil {
			return models.Range{}, err
		}
		e := len(content)
		if i := bytes.IndexByte(content[b:], '\n'); i >= 0 {
			e = b + i
		}
		return models.Range{A: b, B: e}, nil
	}

	from, to, ok := strings.Cut(spec, "-")
	if !ok {
		return models.Range{}, fmt.Errorf("capture: selection %q is not START-END", spec)
	}
	a, err := parsePos(content, from)
	if err != nil {
		return models.Range{}, err
	}
	b, err := parsePos(content, to)
	if err != nil {
		return models.Range{}, err
	}
	return models.Range{A: a, B: b}, nil
}

// ParseRanges parses every spec in order.
func ParseRanges(content []byte, specs []string) ([]models.Range, error) {
	out := make([]models.Range, 0, len(specs))
	for _, s := range specs {
		r, err := ParseRange(content, s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parsePos(content []byte, s string) (int, error) {
	s = strings.TrimSpace(s)
	if l, c, ok := strings.Cut(s, ":"); ok {
		line, err := strconv.Atoi(l)
		if err != nil {
			return 0, fmt.Errorf("capture: bad line in %q", s)
		}
		col, err := strconv.Atoi(c)
		if err != nil || col < 1 {
			return 0, fmt.Errorf("capture: bad column in %q", s)
		}
		start, err := lineStart(content, line)
		if err != nil {
			return 0, err
		}
		return min(start+col-1, len(content)), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("capture: bad offset %q", s)
	}
	if n > len(content) {
		return 0, fmt.Errorf("capture: offset %d past end of document (%d bytes)", n, len(content))
	}
	return n, nil
}

// lineStart returns the byte offset of the first byte of 1-based line n.
func lineStart(content []byte, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("capture: line %d out of range", n)
	}
	off := 0
	for i := 1; i < n; i++ {
		j := bytes.IndexByte(content[off:], '\n')
		if j < 0 {
			return 0, fmt.Errorf("capture: line %d out of range", n)
		}
		off += j + 1
	}
	return off, nil
}
