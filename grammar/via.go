package grammar

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/keyarea/sip2json-sub001/internal/util"
)

// Via is a parsed Via header value, one element per comma-separated hop.
type Via []ViaHop

// ViaHop represents a single hop in the Via header.
type ViaHop struct {
	Protocol  string
	Version   string
	Transport string
	Host      string
	// Port is zero if the sent-by has no port.
	Port   int
	Params Params
}

// Branch returns the branch parameter.
func (hop ViaHop) Branch() (string, bool) { return hop.Params.Last("branch") }

// Received returns the received parameter.
func (hop ViaHop) Received() (string, bool) { return hop.Params.Last("received") }

// RPort returns the rport parameter value, empty if the parameter has no value.
func (hop ViaHop) RPort() (string, bool) { return hop.Params.Last("rport") }

// String renders the hop.
func (hop ViaHop) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(hop.Protocol)
	sb.WriteByte('/')
	sb.WriteString(hop.Version)
	sb.WriteByte('/')
	sb.WriteString(hop.Transport)
	sb.WriteByte(' ')
	sb.WriteString(hop.Host)
	if hop.Port != 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(hop.Port))
	}
	sb.WriteString(hop.Params.String())
	return sb.String()
}

// String renders all hops separated by comma.
func (via Via) String() string {
	hops := make([]string, len(via))
	for i := range via {
		hops[i] = via[i].String()
	}
	return strings.Join(hops, ", ")
}

func parseVia(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(via, s, buildVia))
}

func buildVia(n *abnf.Node) (Value, error) {
	nodes := n.GetNodes("via-parm")
	hops := make(Via, 0, len(nodes))
	for _, hn := range nodes {
		hop, err := buildViaHop(hn)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		hops = append(hops, hop)
	}
	return hops, nil
}

func buildViaHop(n *abnf.Node) (ViaHop, error) {
	hop := ViaHop{
		Protocol:  util.UCase(mustGetNode(n, "protocol-name").String()),
		Version:   mustGetNode(n, "protocol-version").String(),
		Transport: util.UCase(mustGetNode(n, "transport").String()),
		Host:      mustGetNode(n, "host").String(),
		Params:    buildParams(n),
	}
	if pn, ok := n.GetNode("port"); ok && !pn.IsEmpty() {
		port, err := strconv.ParseUint(pn.String(), 10, 16)
		if err != nil || port == 0 {
			return ViaHop{}, errtrace.Wrap(newMalformedInputErr("invalid port %q", pn.String()))
		}
		hop.Port = int(port)
	}
	return hop, nil
}
