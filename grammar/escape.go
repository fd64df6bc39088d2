package grammar

import (
	"strconv"
	"strings"
)

// Quote returns s as a quoted string.
func Quote(s string) string { return strconv.Quote(s) }

// Unquote removes surrounding quotes and quoted-pair escapes.
// Unquoted input is returned as is.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func needsQuote(v string) bool { return !matches(paramValue, v) }
