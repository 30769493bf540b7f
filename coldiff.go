package coldiff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMaxLineSize is the longest input line accepted by a Filter whose
// MaxLineSize is not set.
const DefaultMaxLineSize = 1 << 20

// ErrColumnSpec is wrapped by all errors from ParseColumns.
var ErrColumnSpec = errors.New("invalid column spec")

// ParseColumns parses "<source>,<target>" where both are column numbers ≥ 1.
func ParseColumns(spec string) (source, target int, err error) {
	s, t, ok := strings.Cut(spec, ",")
	if !ok || strings.Contains(t, ",") {
		return 0, 0, fmt.Errorf("%w '%s': need exactly two comma separated numbers",
			ErrColumnSpec, spec)
	}
	if source, err = parseColumn(s); err != nil {
		return 0, 0, fmt.Errorf("%w '%s': source %w", ErrColumnSpec, spec, err)
	}
	if target, err = parseColumn(t); err != nil {
		return 0, 0, fmt.Errorf("%w '%s': target %w", ErrColumnSpec, spec, err)
	}
	return source, target, nil
}

var errColumnZero = errors.New("column 0 does not exist, columns start at 1")

func parseColumn(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	switch {
	case err != nil:
		var nerr *strconv.NumError
		if errors.As(err, &nerr) {
			return 0, nerr.Err
		}
		return 0, err
	case n == 0:
		return 0, errColumnZero
	}
	return int(n), nil
}

// InputError reports a failure while reading input line Line.
type InputError struct {
	Line int
	err  error
}

func (e InputError) Error() string {
	return fmt.Sprintf("input %d:%s", e.Line, e.err)
}

func (e InputError) Unwrap() error { return e.err }

// OutputError reports a failure while writing the output of line Line.
type OutputError struct {
	Line int
	err  error
}

func (e OutputError) Error() string {
	return fmt.Sprintf("output %d:%s", e.Line, e.err)
}

func (e OutputError) Unwrap() error { return e.err }

// Filter highlights the Target column of each line where it differs from the
// Source column. A Filter keeps no state between lines and can be used
// concurrently as long as its fields are not modified.
type Filter struct {
	// 1-based column numbers
	Source, Target int
	// Highlight renders the differing suffix. If nil, the suffix is not marked.
	Highlight Highlighter
	// Lines longer than MaxLineSize bytes, not counting the terminator, make
	// Run fail with bufio.ErrTooLong. If MaxLineSize <= 0,
	// DefaultMaxLineSize is used.
	MaxLineSize int
}

// Line returns line with the differing suffix of the target column
// highlighted. If line does not have both columns it is returned unchanged.
func (f *Filter) Line(line string) string {
	res, _ := f.appendLine(nil, nil, line)
	return string(res)
}

// appendLine appends the rendering of line to dst. cols is scratch space for
// the columns of line and is returned for reuse.
func (f *Filter) appendLine(dst []byte, cols []Span, line string) ([]byte, []Span) {
	cols = AppendColumns(cols[:0], line)
	parts, ok := SelectColumns(line, cols, f.Source, f.Target)
	if !ok {
		return append(dst, line...), cols
	}
	tgt := parts.Target
	dst = append(dst, line[:tgt.Start]...)
	dst = DiffPrefix(parts.Source, tgt.Of(line)).Append(dst, f.Highlight)
	dst = append(dst, line[tgt.End:]...)
	return dst, cols
}

// Run filters r line by line to w. Each output line is written with a single
// call to w.Write before the next line is read. Line terminators "\n" and
// "\r\n" are kept, an unterminated last line is terminated with "\n".
func (f *Filter) Run(w io.Writer, r io.Reader) error {
	maxSize := f.MaxLineSize
	if maxSize <= 0 {
		maxSize = DefaultMaxLineSize
	}
	var (
		ls   lineScanner
		lno  int
		out  []byte
		cols []Span
	)
	scn := bufio.NewScanner(r)
	// room for "\r\n" or the lookahead that detects EOF
	scn.Buffer(make([]byte, 0, min(4096, maxSize+2)), maxSize+2)
	scn.Split(ls.split)
	for scn.Scan() {
		lno++
		if len(scn.Bytes()) > maxSize {
			return InputError{Line: lno, err: bufio.ErrTooLong}
		}
		out, cols = f.appendLine(out[:0], cols, scn.Text())
		out = ls.appendTerm(out)
		if _, err := w.Write(out); err != nil {
			return OutputError{Line: lno, err: err}
		}
	}
	if err := scn.Err(); err != nil {
		return InputError{Line: lno + 1, err: err}
	}
	return nil
}
