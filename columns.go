package coldiff

// Span is the half-open byte range [Start, End) of one column within a line.
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

// Of returns the part of line covered by s.
func (s Span) Of(line string) string { return line[s.Start:s.End] }

// Columns splits line into its columns. Spans are in left to right order,
// non-empty and do not overlap. Empty and all-whitespace lines have no
// columns.
func Columns(line string) []Span {
	return AppendColumns(nil, line)
}

// AppendColumns appends the columns of line to cols and returns the extended
// slice.
func AppendColumns(cols []Span, line string) []Span {
	inCol := false
	begin := 0
	for i := 0; i < len(line); i++ {
		if isSpace(line[i]) {
			if inCol {
				cols = append(cols, Span{begin, i})
				inCol = false
			}
		} else if !inCol {
			begin = i
			inCol = true
		}
	}
	if inCol {
		cols = append(cols, Span{begin, len(line)})
	}
	return cols
}

// isSpace reports the WHATWG ASCII whitespace set. Vertical tab is not part of
// it.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// LineParts are the two columns of a line that take part in a comparison.
type LineParts struct {
	Source string
	Target Span
}

// SelectColumns picks the source and target column of line by their 1-based
// numbers. The result is not ok if either number does not address one of
// cols.
func SelectColumns(line string, cols []Span, source, target int) (parts LineParts, ok bool) {
	if source < 1 || target < 1 || source > len(cols) || target > len(cols) {
		return parts, false
	}
	parts.Source = cols[source-1].Of(line)
	parts.Target = cols[target-1]
	return parts, true
}
