package coldiff

import "bytes"

var newline = []byte{'\n'}

// lineScanner splits input like bufio.ScanLines but remembers how the most
// recent line was terminated.
type lineScanner struct {
	term []byte
}

// split is a bufio.SplitFunc. The returned line neither contains the '\n'
// nor a '\r' right before it.
func (ls *lineScanner) split(data []byte, atEOF bool) (advance int, line []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	end := bytes.IndexByte(data, '\n')
	switch {
	case end >= 0:
		advance = end + 1
	case atEOF:
		end, advance = len(data), len(data)
	default:
		return 0, nil, nil
	}
	line = data[:end]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	ls.term = data[len(line):advance]
	return advance, line, nil
}

// appendTerm appends the terminator of the most recent line to dst. A line
// without '\n' at the end of input gets one.
func (ls *lineScanner) appendTerm(dst []byte) []byte {
	dst = append(dst, ls.term...)
	if !bytes.HasSuffix(ls.term, newline) {
		dst = append(dst, '\n')
	}
	return dst
}
