package coldiff

import (
	"fmt"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"abc", "abcd", "abc"},
		{"abce", "abcd", "abc"},
		{"abcd", "abc", "abc"},
		{"eabcd", "abc", ""},
		{"", "abc", ""},
		{"abc", "", ""},
		{"ABC", "abc", ""},
		{"1.234", "1.230", "1.23"},
		// é and è share their first UTF-8 byte
		{"xé", "xè", "x"},
		{"xé", "xé!", "xé"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, CommonPrefix(tt.a, tt.b))
		})
	}
}

func TestDiffPrefix(t *testing.T) {
	tests := []struct {
		source, target string
		want           Diff
	}{
		{"1.234", "1.230", Diff{"1.23", "0"}},
		{"abcd", "abc", Diff{"abc", ""}},
		{"abc", "abcd", Diff{"abc", "d"}},
		{"x", "abc", Diff{"", "abc"}},
		{"same", "same", Diff{"same", ""}},
	}
	for _, tt := range tests {
		d := DiffPrefix(tt.source, tt.target)
		assert.Equal(t, tt.want, d)
		assert.Equal(t, tt.target, d.String())
		assert.Equal(t, len(tt.target), d.Len())
	}
}

func brackets(s string) string { return "<" + s + ">" }

func TestDiff_Append(t *testing.T) {
	t.Run("marked", func(t *testing.T) {
		out := Diff{"1.23", "0"}.Append([]byte("x "), brackets)
		assert.Equal(t, "x 1.23<0>", string(out))
	})
	t.Run("empty suffix", func(t *testing.T) {
		out := Diff{"abc", ""}.Append(nil, brackets)
		assert.Equal(t, "abc", string(out))
	})
	t.Run("no highlighter", func(t *testing.T) {
		out := Diff{"1.23", "0"}.Append(nil, nil)
		assert.Equal(t, "1.230", string(out))
	})
}

func TestColorHighlighter(t *testing.T) {
	t.Run("default green", func(t *testing.T) {
		hl, err := ColorHighlighter(termenv.ANSI, "")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[32m0\x1b[0m", hl("0"))
	})
	t.Run("bright", func(t *testing.T) {
		hl, err := ColorHighlighter(termenv.ANSI, "bright-red")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[91mab\x1b[0m", hl("ab"))
	})
	t.Run("ascii", func(t *testing.T) {
		hl, err := ColorHighlighter(termenv.Ascii, "blue")
		require.NoError(t, err)
		assert.Equal(t, "ab", hl("ab"))
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := ColorHighlighter(termenv.ANSI, "mauve")
		assert.Error(t, err)
	})
	t.Run("all names", func(t *testing.T) {
		names := ColorNames()
		require.Len(t, names, 16)
		for _, n := range names {
			_, err := ColorHighlighter(termenv.ANSI, n)
			assert.NoError(t, err, n)
		}
	})
}

func ExampleDiffPrefix() {
	d := DiffPrefix("1.234", "1.230")
	fmt.Printf("%q %q\n", d.Prefix, d.Suffix)
	// Output:
	// "1.23" "0"
}
