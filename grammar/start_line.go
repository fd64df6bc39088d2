package grammar

import (
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/keyarea/sip2json-sub001/internal/util"
)

// StartLine is a parsed Request-Line or Status-Line.
// StatusCode is zero for requests.
type StartLine struct {
	Version    string
	Method     string
	URI        URI
	StatusCode int
	Reason     string
}

// IsResponse reports whether the line is a Status-Line.
func (l *StartLine) IsResponse() bool { return l != nil && l.StatusCode != 0 }

// String renders the line without the trailing CRLF.
func (l *StartLine) String() string {
	if l == nil {
		return ""
	}
	if l.IsResponse() {
		return l.Version + " " + strconv.Itoa(l.StatusCode) + " " + l.Reason
	}
	return l.Method + " " + l.URI.Raw + " " + l.Version
}

func parseStartLine(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(startLine, s, func(n *abnf.Node) (Value, error) {
		return errtrace.Wrap2(buildStartLine(n))
	}))
}

func buildStartLine(n *abnf.Node) (*StartLine, error) {
	if name := mustGetNode(n, "version-name").String(); !util.EqFold(name, "SIP") {
		return nil, errtrace.Wrap(newMalformedInputErr("invalid version %q", name))
	}

	line := &StartLine{Version: mustGetNode(n, "SIP-Version").String()}
	if cn, ok := n.GetNode("Status-Code"); ok {
		code, _ := strconv.Atoi(cn.String())
		if code < 100 || code > 699 {
			return nil, errtrace.Wrap(newMalformedInputErr("status code %d out of range", code))
		}
		line.StatusCode = code
		line.Reason = nodeText(n, "Reason-Phrase")
		return line, nil
	}

	u, err := buildURI(mustGetNode(n, "Request-URI"))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	line.Method = mustGetNode(n, "Method").String()
	line.URI = u
	return line, nil
}
