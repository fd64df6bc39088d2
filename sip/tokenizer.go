package sip

import "strings"

type spanStatus uint8

const (
	spanHeader spanStatus = iota
	spanEndOfHeaders
	spanMalformed
)

// nextHeader finds the end of the header field starting at start.
//
// It returns the offset of the CRLF that terminates the field, following
// obsolete line folding: a CRLF followed by whitespace continues the field
// unless the whitespace starts an empty line.
// A CRLF right at start ends the header block.
func nextHeader(data string, start int) (int, spanStatus) {
	if strings.HasPrefix(data[start:], "\r\n") {
		return start, spanEndOfHeaders
	}
	for pos := start; ; {
		i := strings.Index(data[pos:], "\r\n")
		if i < 0 {
			return -1, spanMalformed
		}
		end := pos + i
		next := data[end+2:]
		if !strings.HasPrefix(next, "\r\n") && next != "" && isSpace(next[0]) {
			pos = end + 2
			continue
		}
		return end, spanHeader
	}
}

// isSpace matches the whitespace set of a folded continuation line.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
