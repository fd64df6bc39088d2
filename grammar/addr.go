package grammar

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/emiago/sipgo/sip"
	"github.com/ghettovoice/abnf"

	"github.com/keyarea/sip2json-sub001/internal/util"
)

// URI is an absolute URI.
// SIP and SIPS URIs are parsed into SIP, other schemes keep only the raw text.
type URI struct {
	Scheme string
	Raw    string
	SIP    *sip.Uri
}

// String returns the raw URI text.
func (u URI) String() string { return u.Raw }

// IsSIP reports whether the URI has sip or sips scheme.
func (u URI) IsSIP() bool { return u.SIP != nil }

// ParseURI parses an absolute URI.
func ParseURI(s string) (URI, error) {
	return errtrace.Wrap2(parseNode(absoluteURI, s, buildURI))
}

// buildURI builds a URI from a node holding a scheme child.
func buildURI(n *abnf.Node) (URI, error) {
	u := URI{Scheme: util.LCase(mustGetNode(n, "scheme").String()), Raw: n.String()}
	if u.Scheme != "sip" && u.Scheme != "sips" {
		return u, nil
	}

	var su sip.Uri
	if err := sip.ParseUri(u.Raw, &su); err != nil {
		return URI{}, errtrace.Wrap(newMalformedInputErr(err))
	}
	if su.Host == "" {
		return URI{}, errtrace.Wrap(newMalformedInputErr("missing host in URI %q", u.Raw))
	}
	u.SIP = &su
	return u, nil
}

// NameAddr is an address with optional display name and header parameters,
// as found in From, To, Contact, Route and similar headers.
type NameAddr struct {
	DisplayName string
	URI         URI
	// Wildcard is set for the "*" Contact value.
	Wildcard bool
	Params   Params
}

// Tag returns the tag parameter.
func (addr *NameAddr) Tag() (string, bool) {
	if addr == nil {
		return "", false
	}
	return addr.Params.Last("tag")
}

// HasParam checks whether the header parameter is present.
func (addr *NameAddr) HasParam(name string) bool {
	return addr != nil && addr.Params.Has(name)
}

// Param returns the header parameter value.
func (addr *NameAddr) Param(name string) (string, bool) {
	if addr == nil {
		return "", false
	}
	return addr.Params.Last(name)
}

// String renders the address in the name-addr form.
func (addr *NameAddr) String() string {
	if addr == nil {
		return ""
	}
	if addr.Wildcard {
		return "*"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if addr.DisplayName != "" {
		sb.WriteString(Quote(addr.DisplayName))
		sb.WriteByte(' ')
	}
	sb.WriteByte('<')
	sb.WriteString(addr.URI.Raw)
	sb.WriteByte('>')
	sb.WriteString(addr.Params.String())
	return sb.String()
}

// AddrMatch is a single element of a comma-separated address list.
type AddrMatch struct {
	Raw  string
	Addr *NameAddr
}

// AddrList is a list of addresses of Contact or Route-like headers.
type AddrList []AddrMatch

func parseNameAddrValue(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(addrParam, s, func(n *abnf.Node) (Value, error) {
		return errtrace.Wrap2(buildNameAddr(n))
	}))
}

// buildNameAddr builds an address from the addr-param node.
func buildNameAddr(n *abnf.Node) (*NameAddr, error) {
	u, err := buildURI(mustGetNode(n, "addr-spec"))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	addr := &NameAddr{URI: u, Params: buildParams(n)}
	if dn, ok := n.GetNode("display-name"); ok && !dn.IsEmpty() {
		if strings.HasPrefix(dn.String(), `"`) {
			addr.DisplayName = Unquote(dn.String())
		} else {
			addr.DisplayName = strings.Join(strings.Fields(dn.String()), " ")
		}
	}
	return addr, nil
}

func buildAddrList(n *abnf.Node) (Value, error) {
	nodes := n.GetNodes("addr-param")
	list := make(AddrList, 0, len(nodes))
	for _, an := range nodes {
		addr, err := buildNameAddr(an)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		list = append(list, AddrMatch{Raw: an.String(), Addr: addr})
	}
	return list, nil
}

func parseContact(s string) (Value, error) {
	if trimLWS(s) == "*" {
		return AddrList{{Raw: "*", Addr: &NameAddr{Wildcard: true}}}, nil
	}
	return errtrace.Wrap2(parseNode(contactSet, s, buildAddrList))
}

func parseRouteList(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(routeSet, s, buildAddrList))
}
