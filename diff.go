package coldiff

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
)

// CommonPrefix returns the longest prefix of a that is also a prefix of b.
// Comparison is byte by byte without any case folding or numeric
// interpretation. The prefix is shortened so that it never ends inside a
// multi-byte UTF-8 sequence of b.
func CommonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			n = i
			break
		}
	}
	for n > 0 && n < len(b) && !utf8.RuneStart(b[n]) {
		n--
	}
	return a[:n]
}

// Diff is a target string split at the end of its common prefix with a
// source string. Prefix+Suffix always equals the target.
type Diff struct {
	Prefix string // unmarked
	Suffix string // marked
}

// DiffPrefix splits target into the part it shares with source and the part
// that differs. Suffix is empty if target is a prefix of source.
func DiffPrefix(source, target string) Diff {
	n := len(CommonPrefix(source, target))
	return Diff{Prefix: target[:n], Suffix: target[n:]}
}

func (d Diff) Len() int { return len(d.Prefix) + len(d.Suffix) }

// Append appends the rendering of d to dst with the suffix marked by hl. An
// empty suffix is never passed to hl.
func (d Diff) Append(dst []byte, hl Highlighter) []byte {
	dst = append(dst, d.Prefix...)
	switch {
	case d.Suffix == "":
	case hl == nil:
		dst = append(dst, d.Suffix...)
	default:
		dst = append(dst, hl(d.Suffix)...)
	}
	return dst
}

func (d Diff) String() string {
	return d.Prefix + d.Suffix
}

// Highlighter renders the marked suffix of a target column, e.g. by wrapping
// it into terminal escape sequences. A nil Highlighter does not mark at all.
type Highlighter func(suffix string) string

// DefaultColor is the color used to highlight differing suffixes.
const DefaultColor = "green"

var colorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// ColorNames lists the names accepted by ColorHighlighter.
func ColorNames() []string {
	res := make([]string, 0, 2*len(colorNames))
	res = append(res, colorNames...)
	for _, n := range colorNames {
		res = append(res, "bright-"+n)
	}
	return res
}

func ansiColor(name string) (int, bool) {
	base, bright := strings.CutPrefix(name, "bright-")
	for i, n := range colorNames {
		if n == base {
			if bright {
				return i + 8, true
			}
			return i, true
		}
	}
	return 0, false
}

// ColorHighlighter renders suffixes with the foreground color name using the
// terminal color profile p. With termenv.Ascii the returned Highlighter does
// not add any escape sequences.
func ColorHighlighter(p termenv.Profile, color string) (Highlighter, error) {
	if color == "" {
		color = DefaultColor
	}
	c, ok := ansiColor(color)
	if !ok {
		return nil, fmt.Errorf("unknown color '%s'", color)
	}
	style := p.String().Foreground(p.Color(strconv.Itoa(c)))
	return style.Styled, nil
}
