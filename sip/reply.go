package sip

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/keyarea/sip2json-sub001/grammar"
	"github.com/keyarea/sip2json-sub001/internal/errorutil"
	"github.com/keyarea/sip2json-sub001/internal/util"
)

const (
	// AllowedMethods is the value of Allow header in replies.
	AllowedMethods = "INVITE,ACK,CANCEL,BYE,UPDATE,MESSAGE,OPTIONS,REFER,INFO,NOTIFY"
	// AcceptedBodyTypes is the value of Accept header in replies.
	AcceptedBodyTypes = "application/sdp, application/dtmf-relay"
)

// Reply modes passed to [Observer.OnReply].
const (
	ReplyModeStateful  = "stateful"
	ReplyModeStateless = "stateless"
)

// ReplyOptions are options for [Message.BuildReply] and [Message.Reply].
type ReplyOptions struct {
	// Reason is the reason phrase, default is [ReasonPhrase] of the code.
	Reason string
	// ExtraHeaders are complete header lines inserted after CSeq.
	ExtraHeaders []string
	// Body is an application/sdp body.
	Body string
	// OnSuccess and OnFailure are passed to the server transaction.
	OnSuccess func()
	OnFailure func(error)
}

func (o *ReplyOptions) reason() string {
	if o == nil {
		return ""
	}
	return o.Reason
}

func (o *ReplyOptions) extraHeaders() []string {
	if o == nil {
		return nil
	}
	return o.ExtraHeaders
}

func (o *ReplyOptions) body() string {
	if o == nil {
		return ""
	}
	return o.Body
}

func (o *ReplyOptions) onSuccess() func() {
	if o == nil {
		return nil
	}
	return o.OnSuccess
}

func (o *ReplyOptions) onFailure() func(error) {
	if o == nil {
		return nil
	}
	return o.OnFailure
}

func (msg *Message) validateReply(code int) error {
	if code < 100 || code > 699 {
		return errtrace.Wrap(NewInvalidArgumentError(
			errorutil.NewWrapperError(ErrInvalidStatusCode, "%d", code),
		))
	}
	if !msg.IsRequest() {
		return errtrace.Wrap(ErrNotRequest)
	}
	return nil
}

// BuildReply renders a response to the request.
//
// The response echoes Record-Route (INVITE with 101-200 codes), Via, To, From,
// Call-ID and CSeq of the request, followed by opts.ExtraHeaders and Allow,
// Accept and Supported headers negotiated for the request method.
// A To tag is generated for codes above 100 if the request has none.
//
// Codes outside of 100-699 are rejected with [ErrInvalidStatusCode],
// responses are rejected with [ErrNotRequest].
func (msg *Message) BuildReply(code int, opts *ReplyOptions) (string, error) {
	if err := msg.validateReply(code); err != nil {
		return "", errtrace.Wrap(err)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	msg.writeStatusLine(sb, code, opts.reason())
	if msg.Method == "INVITE" && code > 100 && code <= 200 {
		for _, rr := range msg.GetHeaders("Record-Route") {
			writeHeader(sb, "Record-Route", rr)
		}
	}
	msg.writeDialogHeaders(sb, code)
	for _, h := range opts.extraHeaders() {
		sb.WriteString(util.TrimSP(h))
		sb.WriteString("\r\n")
	}

	body := opts.body()
	switch {
	case msg.Method == "OPTIONS":
		writeHeader(sb, "Allow", AllowedMethods)
		writeHeader(sb, "Accept", AcceptedBodyTypes)
	case code == StatusMethodNotAllowed:
		writeHeader(sb, "Allow", AllowedMethods)
	case code == StatusUnsupportedMediaType:
		writeHeader(sb, "Accept", AcceptedBodyTypes)
	}
	writeHeader(sb, "Supported", strings.Join(msg.supported(body), ","))

	if body != "" {
		writeHeader(sb, "Content-Type", "application/sdp")
		writeHeader(sb, "Content-Length", strconv.Itoa(len(body)))
		sb.WriteString("\r\n")
		sb.WriteString(body)
	} else {
		writeHeader(sb, "Content-Length", "0")
		sb.WriteString("\r\n")
	}
	return sb.String(), nil
}

// Reply builds a response with [Message.BuildReply] and passes it to the
// server transaction of the request.
func (msg *Message) Reply(code int, opts *ReplyOptions) error {
	res, err := msg.BuildReply(code, opts)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if msg.ServerTransaction == nil {
		return errtrace.Wrap(ErrNoServerTransaction)
	}

	msg.ServerTransaction.ReceiveResponse(code, res, opts.onSuccess(), opts.onFailure())
	msg.observer().OnReply(ReplyModeStateful, code)
	msg.log().Debug("reply passed to server transaction", "code", code, "call_id", msg.CallID)
	return nil
}

// BuildStatelessReply renders a response to the request without body,
// Record-Route and negotiated headers.
// Validation is the same as in [Message.BuildReply].
func (msg *Message) BuildStatelessReply(code int, reason string) (string, error) {
	if err := msg.validateReply(code); err != nil {
		return "", errtrace.Wrap(err)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	msg.writeStatusLine(sb, code, reason)
	msg.writeDialogHeaders(sb, code)
	writeHeader(sb, "Content-Length", "0")
	sb.WriteString("\r\n")
	return sb.String(), nil
}

// ReplyStateless builds a response with [Message.BuildStatelessReply] and
// sends it through the transport of the request.
func (msg *Message) ReplyStateless(code int, reason string) error {
	res, err := msg.BuildStatelessReply(code, reason)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if msg.Transport == nil {
		return errtrace.Wrap(ErrNoTransport)
	}

	if err := msg.Transport.Send(res); err != nil {
		return errtrace.Wrap(err)
	}
	msg.observer().OnReply(ReplyModeStateless, code)
	msg.log().Debug("stateless reply sent", "code", code, "call_id", msg.CallID)
	return nil
}

func (msg *Message) writeStatusLine(sb *strings.Builder, code int, reason string) {
	if reason == "" {
		reason = ReasonPhrase(code)
	}
	sb.WriteString("SIP/2.0 ")
	sb.WriteString(strconv.Itoa(code))
	sb.WriteByte(' ')
	sb.WriteString(reason)
	sb.WriteString("\r\n")
}

// writeDialogHeaders writes Via, To, From, Call-ID and CSeq headers.
func (msg *Message) writeDialogHeaders(sb *strings.Builder, code int) {
	for _, via := range msg.GetHeaders("Via") {
		writeHeader(sb, "Via", via)
	}

	to := msg.GetHeader("To")
	if msg.ToTag == "" {
		if code > 100 {
			to += ";tag=" + msg.tag()
		}
	} else if !msg.toHasTag() {
		to += ";tag=" + msg.ToTag
	}
	writeHeader(sb, "To", to)
	writeHeader(sb, "From", msg.GetHeader("From"))
	writeHeader(sb, "Call-ID", msg.CallID)
	writeHeader(sb, "CSeq", strconv.FormatUint(uint64(msg.CSeq), 10)+" "+msg.Method)
}

func (msg *Message) toHasTag() bool {
	v, ok := msg.ParseHeader("To", 0)
	if !ok {
		return false
	}
	addr, _ := v.(*grammar.NameAddr)
	return addr.HasParam("tag")
}

// supported returns extensions for Supported header of the reply.
func (msg *Message) supported(body string) []string {
	ua := msg.userAgent()
	var exts []string
	switch msg.Method {
	case "INVITE":
		if ua.SessionTimers() {
			exts = append(exts, "timer")
		}
		if ua.PublicGRUU() != "" || ua.TemporaryGRUU() != "" {
			exts = append(exts, "gruu")
		}
		exts = append(exts, "ice", "replaces")
	case "UPDATE":
		if ua.SessionTimers() {
			exts = append(exts, "timer")
		}
		if body != "" {
			exts = append(exts, "ice")
		}
		exts = append(exts, "replaces")
	}
	return append(exts, "outbound")
}

func (msg *Message) userAgent() UserAgent {
	if msg.ua == nil {
		return UAConfig{}
	}
	return msg.ua
}

func (msg *Message) tag() string {
	if msg.newTag == nil {
		return defNewTag()
	}
	return msg.newTag()
}

func writeHeader(sb *strings.Builder, name, value string) {
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\r\n")
}
