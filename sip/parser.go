package sip

import (
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/keyarea/sip2json-sub001/grammar"
	"github.com/keyarea/sip2json-sub001/internal/errorutil"
	"github.com/keyarea/sip2json-sub001/internal/log"
	"github.com/keyarea/sip2json-sub001/internal/util"
)

// ParserOptions are options for [Parser].
// The zero value and nil are valid and select the defaults.
type ParserOptions struct {
	// Grammar validates the start line and well-known header fields.
	// Default is [DefaultGrammar].
	Grammar Grammar
	// SDP parses application/sdp bodies.
	// Default is [PionSDP].
	SDP SDPParser
	// UserAgent is consulted when replies negotiate Supported extensions.
	// Default is the zero [UAConfig].
	UserAgent UserAgent
	// NewTag generates To tags of replies.
	// Default generates 10 random lower-case alphanumeric characters.
	NewTag func() string
	// Observer is notified about parse and reply outcomes.
	Observer Observer
	// Logger is the logger used by the parser and parsed messages.
	// Default is [log.Noop].
	Logger *slog.Logger
}

func (o *ParserOptions) grammar() Grammar {
	if o == nil || o.Grammar == nil {
		return DefaultGrammar
	}
	return o.Grammar
}

func (o *ParserOptions) sdp() SDPParser {
	if o == nil || o.SDP == nil {
		return PionSDP
	}
	return o.SDP
}

func (o *ParserOptions) userAgent() UserAgent {
	if o == nil || o.UserAgent == nil {
		return UAConfig{}
	}
	return o.UserAgent
}

func (o *ParserOptions) newTag() func() string {
	if o == nil || o.NewTag == nil {
		return defNewTag
	}
	return o.NewTag
}

func (o *ParserOptions) observer() Observer {
	if o == nil || o.Observer == nil {
		return noopObserver{}
	}
	return o.Observer
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

func defNewTag() string { return util.RandStringLC(10) }

// Parser parses SIP messages.
// It is immutable and safe for concurrent use.
type Parser struct {
	grammar Grammar
	sdp     SDPParser
	ua      UserAgent
	newTag  func() string
	obs     Observer
	log     *slog.Logger
}

// NewParser creates a new parser with the given options.
// Options are optional and can be nil.
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{
		grammar: opts.grammar(),
		sdp:     opts.sdp(),
		ua:      opts.userAgent(),
		newTag:  opts.newTag(),
		obs:     opts.observer(),
		log:     opts.log(),
	}
}

var defParser = NewParser(nil)

// Parse parses data using the default parser.
// See [Parser.Parse] for details.
func Parse(data string) (*Message, error) { return errtrace.Wrap2(defParser.Parse(data)) }

// Failure reasons passed to [Observer.OnParseFailure].
const (
	FailureNotMessage = "not_message"
	FailureStartLine  = "start_line"
	FailureHeaders    = "headers"
)

// Parse parses a single SIP message from data.
//
// A buffer without any CRLF is not a SIP message and [ErrNotMessage] is returned.
// Any other failure aborts the whole parse and returns a [*ParseError],
// failures of well-known header fields are reported as [*HeaderError] inside of it.
//
// If the message has a Content-Length header, the body is cut to that many bytes
// and anything after it is discarded.
// An application/sdp body with non-zero Content-Length is parsed eagerly, see [Message.SDP].
func (p *Parser) Parse(data string) (*Message, error) {
	lineEnd := strings.Index(data, "\r\n")
	if lineEnd < 0 {
		p.log.Debug("no CRLF found, not a SIP message", "data", log.TextValue(data))
		p.obs.OnParseFailure(FailureNotMessage)
		return nil, errtrace.Wrap(ErrNotMessage)
	}

	msg, err := p.parseStartLine(data[:lineEnd])
	if err != nil {
		p.log.Warn("failed to parse start line", "line", log.TextValue(data[:lineEnd]), "error", err)
		p.obs.OnParseFailure(FailureStartLine)
		return nil, errtrace.Wrap(&ParseError{Err: err, State: ParseStateStart, Buf: []byte(data[:lineEnd])})
	}
	msg.Data = data

	bodyStart, err := p.parseHeaders(msg, data, lineEnd+2)
	if err != nil {
		p.log.Warn("failed to parse headers", "error", err)
		p.obs.OnParseFailure(FailureHeaders)
		return nil, errtrace.Wrap(err)
	}

	clen, hasCLen := contentLength(msg)
	if hasCLen {
		msg.Body = data[bodyStart:min(bodyStart+clen, len(data))]
	} else {
		msg.Body = data[bodyStart:]
	}

	if hasCLen && clen > 0 && isSDPContent(msg) {
		msg.ParseSDP(false)
	}

	p.log.Debug("message parsed",
		"message", msg,
		"headers", log.CalcValue(func() any { return msg.Headers.Names() }),
	)
	p.obs.OnParse(msg.Kind.String())
	return msg, nil
}

func (p *Parser) newMessage(kind Kind) *Message {
	return &Message{
		Kind:      kind,
		grammar:   p.grammar,
		sdpParser: p.sdp,
		ua:        p.ua,
		newTag:    p.newTag,
		obs:       p.obs,
		logger:    p.log,
	}
}

func (p *Parser) parseStartLine(line string) (*Message, error) {
	v, err := p.grammar.Parse(line, grammar.RuleRequestResponse)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	sl, ok := v.(*grammar.StartLine)
	if !ok || sl == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("unexpected start line value %T", v))
	}

	if sl.IsResponse() {
		msg := p.newMessage(KindResponse)
		msg.StatusCode = sl.StatusCode
		msg.Reason = sl.Reason
		return msg, nil
	}
	msg := p.newMessage(KindRequest)
	msg.Method = sl.Method
	msg.RequestURI = sl.URI
	return msg, nil
}

// parseHeaders dispatches all header fields starting at start
// and returns the offset of the body.
func (p *Parser) parseHeaders(msg *Message, data string, start int) (int, error) {
	for {
		end, st := nextHeader(data, start)
		switch st {
		case spanEndOfHeaders:
			return start + 2, nil
		case spanMalformed:
			return 0, errtrace.Wrap(&ParseError{
				Err:   errorutil.NewWrapperError(ErrMalformedHeaders, "missing CRLF after header field"),
				State: ParseStateHeaders,
				Buf:   []byte(data[start:]),
			})
		}

		line := data[start:end]
		name, value, ok := strings.Cut(line, ":")
		name = util.TrimSP(name)
		if !ok || name == "" {
			return 0, errtrace.Wrap(&ParseError{
				Err:   errorutil.NewWrapperError(ErrMalformedHeaders, "invalid header field %q", line),
				State: ParseStateHeaders,
				Buf:   []byte(line),
			})
		}
		if err := dispatchHeader(msg, name, util.TrimSP(value)); err != nil {
			return 0, errtrace.Wrap(&ParseError{Err: err, State: ParseStateHeaders, Buf: []byte(line)})
		}
		start = end + 2
	}
}

func contentLength(msg *Message) (int, bool) {
	c := msg.Headers.cell("Content-Length", 0)
	if c == nil {
		return 0, false
	}
	if n, ok := c.parsed.(grammar.Uint); ok {
		return int(n), true
	}
	n, err := strconv.Atoi(util.TrimSP(c.raw))
	if err != nil || n < 0 {
		return 0, true
	}
	return n, true
}

func isSDPContent(msg *Message) bool {
	c := msg.Headers.cell("Content-Type", 0)
	if c == nil {
		return false
	}
	mt, ok := c.parsed.(*grammar.MIMEType)
	return ok && mt.Is("application", "sdp")
}
