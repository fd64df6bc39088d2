package grammar

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/keyarea/sip2json-sub001/internal/util"
)

// CallID is a parsed Call-ID value.
type CallID string

func parseCallID(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(callID, s, func(n *abnf.Node) (Value, error) {
		return CallID(n.String()), nil
	}))
}

// MaxCSeq is the largest allowed CSeq sequence number.
const MaxCSeq = 1<<31 - 1

// CSeq is a parsed CSeq value.
type CSeq struct {
	SeqNum uint32
	Method string
}

// String renders the CSeq value.
func (cseq *CSeq) String() string {
	if cseq == nil {
		return ""
	}
	return strconv.FormatUint(uint64(cseq.SeqNum), 10) + " " + cseq.Method
}

func parseCSeq(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(cseq, s, func(n *abnf.Node) (Value, error) {
		num, err := buildUint32(mustGetNode(n, "seq-num"))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if num > MaxCSeq {
			return nil, errtrace.Wrap(newMalformedInputErr("CSeq %d exceeds %d", num, MaxCSeq))
		}
		return &CSeq{SeqNum: num, Method: mustGetNode(n, "Method").String()}, nil
	}))
}

// Uint is a parsed numeric header value, e.g. Content-Length or Max-Forwards.
type Uint uint32

func parseUint(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(delta, s, func(n *abnf.Node) (Value, error) {
		v, err := buildUint32(n)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return Uint(v), nil
	}))
}

// MIMEType is a parsed Content-Type value.
type MIMEType struct {
	Type    string
	Subtype string
	Params  Params
}

// Is reports whether the media type matches typ/subtyp case-insensitively.
func (mt *MIMEType) Is(typ, subtyp string) bool {
	return mt != nil && util.EqFold(mt.Type, typ) && util.EqFold(mt.Subtype, subtyp)
}

// String renders the media type.
func (mt *MIMEType) String() string {
	if mt == nil {
		return ""
	}
	return mt.Type + "/" + mt.Subtype + mt.Params.String()
}

func parseMIMEType(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(mediaType, s, func(n *abnf.Node) (Value, error) {
		return &MIMEType{
			Type:    mustGetNode(n, "m-type").String(),
			Subtype: mustGetNode(n, "m-subtype").String(),
			Params:  buildParams(n),
		}, nil
	}))
}

// Challenge is a parsed WWW-Authenticate or Proxy-Authenticate value.
type Challenge struct {
	Scheme string
	Params Params
}

// Realm returns the realm parameter.
func (c *Challenge) Realm() string { return c.param("realm") }

// Nonce returns the nonce parameter.
func (c *Challenge) Nonce() string { return c.param("nonce") }

// Opaque returns the opaque parameter.
func (c *Challenge) Opaque() string { return c.param("opaque") }

// Algorithm returns the algorithm parameter.
func (c *Challenge) Algorithm() string { return c.param("algorithm") }

// Stale reports whether the stale parameter is true.
func (c *Challenge) Stale() bool { return util.EqFold(c.param("stale"), "true") }

// QOP returns the list of offered quality of protection values.
func (c *Challenge) QOP() []string {
	qop := c.param("qop")
	if qop == "" {
		return nil
	}
	var vals []string
	for _, v := range strings.Split(qop, ",") {
		if v = trimLWS(v); v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}

func (c *Challenge) param(name string) string {
	if c == nil {
		return ""
	}
	v, _ := c.Params.Last(name)
	return v
}

func parseChallenge(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(challenge, s, func(n *abnf.Node) (Value, error) {
		return &Challenge{Scheme: mustGetNode(n, "auth-scheme").String(), Params: buildParams(n)}, nil
	}))
}

// Replaces is a parsed Replaces value.
type Replaces struct {
	CallID    string
	ToTag     string
	FromTag   string
	EarlyOnly bool
	Params    Params
}

func parseReplaces(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(replaces, s, func(n *abnf.Node) (Value, error) {
		ps := buildParams(n)
		toTag, _ := ps.Last("to-tag")
		fromTag, _ := ps.Last("from-tag")
		if toTag == "" || fromTag == "" {
			return nil, errtrace.Wrap(newMalformedInputErr("Replaces %q lacks to-tag or from-tag", n.String()))
		}
		return &Replaces{
			CallID:    mustGetNode(n, "callid").String(),
			ToTag:     toTag,
			FromTag:   fromTag,
			EarlyOnly: ps.Has("early-only"),
			Params:    ps,
		}, nil
	}))
}

// SessionExpires is a parsed Session-Expires value.
type SessionExpires struct {
	Expires uint32
	// Refresher is "uac", "uas" or empty.
	Refresher string
	Params    Params
}

func parseSessionExpires(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(sessExp, s, func(n *abnf.Node) (Value, error) {
		v, err := buildUint32(mustGetNode(n, "delta-seconds"))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		se := &SessionExpires{Expires: v, Params: buildParams(n)}
		if r, ok := se.Params.Last("refresher"); ok {
			if r = util.LCase(r); r == "uac" || r == "uas" {
				se.Refresher = r
			}
		}
		return se, nil
	}))
}

// Event is a parsed Event value.
type Event struct {
	Type   string
	Params Params
}

// ID returns the id parameter.
func (e *Event) ID() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.Params.Last("id")
}

func parseEvent(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(event, s, func(n *abnf.Node) (Value, error) {
		return &Event{Type: mustGetNode(n, "event-type").String(), Params: buildParams(n)}, nil
	}))
}

// SubscriptionState is a parsed Subscription-State value.
type SubscriptionState struct {
	State  string
	Params Params
}

// Expires returns the expires parameter.
func (ss *SubscriptionState) Expires() (uint32, bool) {
	if ss == nil {
		return 0, false
	}
	v, ok := ss.Params.Last("expires")
	if !ok {
		return 0, false
	}
	n, err := parseUint32(v)
	return n, err == nil
}

func parseSubscriptionState(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(substate, s, func(n *abnf.Node) (Value, error) {
		return &SubscriptionState{
			State:  util.LCase(mustGetNode(n, "substate-value").String()),
			Params: buildParams(n),
		}, nil
	}))
}

// Reason is a parsed Reason value.
type Reason struct {
	Protocol string
	Cause    int
	Text     string
	Params   Params
}

func parseReason(s string) (Value, error) {
	return errtrace.Wrap2(parseNode(reason, s, func(n *abnf.Node) (Value, error) {
		r := &Reason{Protocol: mustGetNode(n, "protocol").String(), Params: buildParams(n)}
		if v, ok := r.Params.Last("cause"); ok {
			cause, err := parseUint32(v)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			r.Cause = int(cause)
		}
		r.Text, _ = r.Params.Last("text")
		return r, nil
	}))
}

// TokenList is a parsed comma-separated list of tokens, e.g. Allow or Supported.
type TokenList []string

// Has reports whether the list contains the token, ignoring case.
func (tl TokenList) Has(tok string) bool {
	for _, t := range tl {
		if util.EqFold(t, tok) {
			return true
		}
	}
	return false
}

// parseTokenList accepts an empty value as an empty list.
func parseTokenList(s string) (Value, error) {
	if trimLWS(s) == "" {
		return TokenList{}, nil
	}
	return errtrace.Wrap2(parseNode(tokens, s, func(n *abnf.Node) (Value, error) {
		nodes := n.GetNodes("list-token")
		list := make(TokenList, len(nodes))
		for i, tn := range nodes {
			list[i] = tn.String()
		}
		return list, nil
	}))
}
