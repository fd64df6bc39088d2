package sip

import (
	"braces.dev/errtrace"

	"github.com/keyarea/sip2json-sub001/grammar"
	"github.com/keyarea/sip2json-sub001/internal/errorutil"
	"github.com/keyarea/sip2json-sub001/internal/util"
)

// compactNames maps compact header forms to canonical names.
var compactNames = map[string]string{
	"v": "Via",
	"f": "From",
	"t": "To",
	"i": "Call-ID",
	"m": "Contact",
	"l": "Content-Length",
	"c": "Content-Type",
	"x": "Session-Expires",
	"r": "Refer-To",
	"o": "Event",
	// stored only
	"e": "Content-Encoding",
	"k": "Supported",
	"s": "Subject",
	"u": "Allow-Events",
	"b": "Referred-By",
}

// canonicName resolves compact forms and canonicalizes the header name.
func canonicName(name string) string {
	if n, ok := compactNames[util.LCase(name)]; ok {
		return n
	}
	return Headerize(name)
}

// headerHandler stores a header field in msg and updates derived fields.
type headerHandler func(msg *Message, name, value string) error

var headerHandlers map[string]headerHandler

func init() {
	headerHandlers = map[string]headerHandler{
		"Via":                dispatchVia,
		"From":               dispatchFrom,
		"To":                 dispatchTo,
		"Record-Route":       dispatchAddrList,
		"Contact":            dispatchAddrList,
		"Call-ID":            dispatchCallID,
		"Content-Length":     dispatchSet,
		"Content-Type":       dispatchSet,
		"Max-Forwards":       dispatchSet,
		"WWW-Authenticate":   dispatchSet,
		"Proxy-Authenticate": dispatchSet,
		"CSeq":               dispatchCSeq,
		"Session-Expires":    dispatchSessionExpires,
		"Refer-To":           dispatchReferTo,
		"Replaces":           dispatchReplaces,
		"Event":              dispatchEvent,
	}
}

// dispatchHeader stores a single header field in msg.
// Well-known header fields are validated by the grammar,
// a rejected field is removed from msg and the error is returned.
func dispatchHeader(msg *Message, name, value string) error {
	name = canonicName(name)
	h, ok := headerHandlers[name]
	if !ok {
		msg.Headers.Add(name, value)
		return nil
	}
	if err := h(msg, name, value); err != nil {
		return errtrace.Wrap(&HeaderError{Name: name, Value: value, Err: err})
	}
	return nil
}

// setAndParse replaces the header with value and parses it.
func setAndParse(msg *Message, name, value string) (grammar.Value, error) {
	msg.Headers.Set(name, value)
	return errtrace.Wrap2(parseFirst(msg, name))
}

// parseFirst parses the first occurrence of the header, evicting it on failure.
func parseFirst(msg *Message, name string) (grammar.Value, error) {
	c := msg.Headers.cell(name, 0)
	v, err := msg.parseCell(name, c)
	if err != nil {
		msg.Headers.evict(name, 0)
		return nil, errtrace.Wrap(err)
	}
	return v, nil
}

func dispatchSet(msg *Message, name, value string) error {
	_, err := setAndParse(msg, name, value)
	return errtrace.Wrap(err)
}

func dispatchVia(msg *Message, name, value string) error {
	msg.Headers.Add(name, value)
	if msg.Headers.Count(name) > 1 {
		return nil
	}
	v, err := parseFirst(msg, name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	via, _ := v.(grammar.Via)
	msg.Via = via
	if len(via) > 0 {
		msg.ViaBranch, _ = via[0].Branch()
	}
	return nil
}

func dispatchFrom(msg *Message, name, value string) error {
	v, err := setAndParse(msg, name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	msg.From, _ = v.(*grammar.NameAddr)
	msg.FromTag, _ = msg.From.Tag()
	return nil
}

func dispatchTo(msg *Message, name, value string) error {
	v, err := setAndParse(msg, name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	msg.To, _ = v.(*grammar.NameAddr)
	msg.ToTag, _ = msg.To.Tag()
	return nil
}

// splitAddrHeaders hold one address per occurrence.
var splitAddrHeaders = map[string]bool{
	"Record-Route": true,
	"Contact":      true,
}

// dispatchAddrList stores every address of the list as a separate occurrence
// with its parsed value attached.
func dispatchAddrList(msg *Message, name, value string) error {
	v, err := msg.grammarOrDef().Parse(value, ruleName(name))
	if err != nil {
		return errtrace.Wrap(err)
	}
	list, ok := v.(grammar.AddrList)
	if !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "unexpected %s value %T", name, v))
	}
	for _, m := range list {
		msg.Headers.addParsed(name, m.Raw, m.Addr)
	}
	return nil
}

func dispatchCallID(msg *Message, name, value string) error {
	if _, err := setAndParse(msg, name, value); err != nil {
		return errtrace.Wrap(err)
	}
	msg.CallID = value
	return nil
}

func dispatchCSeq(msg *Message, name, value string) error {
	v, err := setAndParse(msg, name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if cseq, ok := v.(*grammar.CSeq); ok {
		msg.CSeq = cseq.SeqNum
		if msg.IsResponse() {
			msg.Method = cseq.Method
		}
	}
	return nil
}

func dispatchSessionExpires(msg *Message, name, value string) error {
	v, err := setAndParse(msg, name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if se, ok := v.(*grammar.SessionExpires); ok {
		msg.SessionExpires = se.Expires
		msg.SessionExpiresRefresher = se.Refresher
	}
	return nil
}

func dispatchReferTo(msg *Message, name, value string) error {
	v, err := setAndParse(msg, name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	msg.ReferTo, _ = v.(*grammar.NameAddr)
	return nil
}

func dispatchReplaces(msg *Message, name, value string) error {
	v, err := setAndParse(msg, name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	msg.Replaces, _ = v.(*grammar.Replaces)
	return nil
}

func dispatchEvent(msg *Message, name, value string) error {
	v, err := setAndParse(msg, name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	msg.Event, _ = v.(*grammar.Event)
	return nil
}
