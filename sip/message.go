package sip

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/pion/sdp/v3"

	"github.com/keyarea/sip2json-sub001/grammar"
	"github.com/keyarea/sip2json-sub001/internal/log"
)

// Kind distinguishes requests from responses.
type Kind uint8

const (
	KindRequest Kind = iota + 1
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Message is a parsed incoming SIP message.
//
// Fields after the common block are set depending on Kind.
// A Message is owned by the caller that parsed it and must not be used
// concurrently, since parsing of headers and SDP on demand caches the results.
type Message struct {
	Kind Kind
	// Data is the raw buffer the message was parsed from.
	Data    string
	Headers Headers
	Body    string

	Method    string
	Via       grammar.Via
	ViaBranch string
	From      *grammar.NameAddr
	FromTag   string
	To        *grammar.NameAddr
	ToTag     string
	// CallID is the raw Call-ID header value.
	CallID                  string
	CSeq                    uint32
	SessionExpires          uint32
	SessionExpiresRefresher string
	ReferTo                 *grammar.NameAddr
	Replaces                *grammar.Replaces
	Event                   *grammar.Event

	// Request fields.
	RequestURI        grammar.URI
	Transport         Transport
	ServerTransaction ServerTransaction

	// Response fields.
	StatusCode int
	Reason     string

	grammar   Grammar
	sdpParser SDPParser
	ua        UserAgent
	newTag    func() string
	obs       Observer
	logger    *slog.Logger

	sdp *sdp.SessionDescription
}

func (msg *Message) IsRequest() bool { return msg != nil && msg.Kind == KindRequest }

func (msg *Message) IsResponse() bool { return msg != nil && msg.Kind == KindResponse }

// AddHeader appends a raw header value.
func (msg *Message) AddHeader(name, value string) { msg.Headers.Add(name, value) }

// SetHeader replaces all occurrences of the header with a single raw value.
func (msg *Message) SetHeader(name, value string) { msg.Headers.Set(name, value) }

// GetHeader returns the raw value of the first header occurrence or empty string.
func (msg *Message) GetHeader(name string) string {
	v, _ := msg.Headers.Get(name)
	return v
}

// GetHeaders returns raw values of all header occurrences.
func (msg *Message) GetHeaders(name string) []string { return msg.Headers.Values(name) }

func (msg *Message) HasHeader(name string) bool { return msg.Headers.Has(name) }

func (msg *Message) CountHeader(name string) int { return msg.Headers.Count(name) }

// ParseHeader returns the parsed value of the idx-th occurrence of the header.
//
// Parsed values are cached. A Record-Route or Contact occurrence holding a single
// address yields *grammar.NameAddr, a longer list yields grammar.AddrList.
// Names may be given in compact form.
// If the grammar rejects the value, the occurrence is removed from the message and
// ParseHeader reports false. Headers without a grammar rule are left intact.
func (msg *Message) ParseHeader(name string, idx int) (grammar.Value, bool) {
	name = canonicName(name)
	c := msg.Headers.cell(name, idx)
	if c == nil {
		msg.log().Debug("header not present", "header", name, "index", idx)
		return nil, false
	}
	if c.state == cellParsed {
		return c.parsed, true
	}

	v, err := msg.parseCell(name, c)
	if err != nil {
		if errors.Is(err, grammar.ErrUnknownRule) {
			msg.log().Debug("no grammar rule for header", "header", name)
			return nil, false
		}
		msg.Headers.evict(name, idx)
		msg.log().Debug("failed to parse header, occurrence removed",
			"header", name,
			"value", log.TextValue(c.raw),
			"error", err,
		)
		return nil, false
	}
	return v, true
}

func (msg *Message) parseCell(name string, c *headerCell) (grammar.Value, error) {
	v, err := msg.grammarOrDef().Parse(c.raw, ruleName(name))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if list, ok := v.(grammar.AddrList); ok && len(list) == 1 && splitAddrHeaders[name] {
		v = list[0].Addr
	}
	c.setParsed(v)
	return v, nil
}

// SDP returns the cached session description of the body.
// It is set on parse for application/sdp bodies or by [Message.ParseSDP].
func (msg *Message) SDP() *sdp.SessionDescription { return msg.sdp }

// ParseSDP parses the body as a session description and caches the result.
// The cached value is returned unless force is set.
// A body that fails to parse yields an empty session description.
func (msg *Message) ParseSDP(force bool) *sdp.SessionDescription {
	if msg.sdp != nil && !force {
		return msg.sdp
	}
	sd, err := msg.sdpOrDef().ParseSDP(msg.Body)
	if err != nil {
		msg.log().Debug("failed to parse SDP body", "error", err)
		sd = &sdp.SessionDescription{}
	}
	msg.sdp = sd
	return sd
}

// String returns the raw buffer the message was parsed from.
func (msg *Message) String() string {
	if msg == nil {
		return ""
	}
	return msg.Data
}

// LogValue implements [slog.LogValuer].
func (msg *Message) LogValue() slog.Value {
	if msg == nil {
		return slog.Value{}
	}
	attrs := []slog.Attr{slog.String("kind", msg.Kind.String())}
	if msg.IsRequest() {
		attrs = append(attrs,
			slog.String("method", msg.Method),
			slog.String("ruri", msg.RequestURI.Raw),
		)
	} else {
		attrs = append(attrs,
			slog.Int("status", msg.StatusCode),
			slog.String("reason", msg.Reason),
		)
	}
	attrs = append(attrs,
		slog.String("call_id", msg.CallID),
		slog.Any("cseq", msg.CSeq),
		slog.String("via_branch", msg.ViaBranch),
		slog.String("from_tag", msg.FromTag),
		slog.String("to_tag", msg.ToTag),
	)
	return slog.GroupValue(attrs...)
}

type headerJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type mediaJSON struct {
	Media   string   `json:"media"`
	Port    int      `json:"port"`
	Proto   string   `json:"proto"`
	Formats []string `json:"formats,omitempty"`
}

type messageJSON struct {
	Kind       string       `json:"kind"`
	Method     string       `json:"method,omitempty"`
	RequestURI string       `json:"ruri,omitempty"`
	StatusCode int          `json:"status_code,omitempty"`
	Reason     string       `json:"reason_phrase,omitempty"`
	CallID     string       `json:"call_id,omitempty"`
	CSeq       uint32       `json:"cseq,omitempty"`
	ViaBranch  string       `json:"via_branch,omitempty"`
	FromTag    string       `json:"from_tag,omitempty"`
	ToTag      string       `json:"to_tag,omitempty"`
	Headers    []headerJSON `json:"headers"`
	Body       string       `json:"body,omitempty"`
	Media      []mediaJSON  `json:"sdp_media,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
// It renders a summary of the message: derived fields, raw headers in arrival order,
// body and media streams of the cached session description.
func (msg *Message) MarshalJSON() ([]byte, error) {
	if msg == nil {
		return []byte("null"), nil
	}
	mj := messageJSON{
		Kind:      msg.Kind.String(),
		Method:    msg.Method,
		CallID:    msg.CallID,
		CSeq:      msg.CSeq,
		ViaBranch: msg.ViaBranch,
		FromTag:   msg.FromTag,
		ToTag:     msg.ToTag,
		Headers:   make([]headerJSON, 0, msg.Headers.Len()),
		Body:      msg.Body,
	}
	if msg.IsRequest() {
		mj.RequestURI = msg.RequestURI.Raw
	} else {
		mj.StatusCode = msg.StatusCode
		mj.Reason = msg.Reason
	}
	for name, val := range msg.Headers.All() {
		mj.Headers = append(mj.Headers, headerJSON{name, val})
	}
	if msg.sdp != nil {
		for _, md := range msg.sdp.MediaDescriptions {
			mj.Media = append(mj.Media, mediaJSON{
				Media:   md.MediaName.Media,
				Port:    md.MediaName.Port.Value,
				Proto:   strings.Join(md.MediaName.Protos, "/"),
				Formats: md.MediaName.Formats,
			})
		}
	}
	return errtrace.Wrap2(json.Marshal(mj))
}

func (msg *Message) grammarOrDef() Grammar {
	if msg.grammar == nil {
		return DefaultGrammar
	}
	return msg.grammar
}

func (msg *Message) sdpOrDef() SDPParser {
	if msg.sdpParser == nil {
		return PionSDP
	}
	return msg.sdpParser
}

func (msg *Message) log() *slog.Logger {
	if msg.logger == nil {
		return log.Noop
	}
	return msg.logger
}

func (msg *Message) observer() Observer {
	if msg.obs == nil {
		return noopObserver{}
	}
	return msg.obs
}
