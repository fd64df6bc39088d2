package sip

import (
	"braces.dev/errtrace"
	"github.com/pion/sdp/v3"

	"github.com/keyarea/sip2json-sub001/grammar"
)

// Grammar parses text according to a rule.
//
// Rule keys are canonical header names with hyphens replaced by underscores,
// plus "Request_Response" for the start line. See [grammar.Parse].
type Grammar interface {
	Parse(text, rule string) (grammar.Value, error)
}

// GrammarFunc is an adapter to use ordinary functions as [Grammar].
type GrammarFunc func(text, rule string) (grammar.Value, error)

// Parse calls fn(text, rule).
func (fn GrammarFunc) Parse(text, rule string) (grammar.Value, error) {
	return errtrace.Wrap2(fn(text, rule))
}

// DefaultGrammar is the [Grammar] backed by package grammar.
var DefaultGrammar Grammar = GrammarFunc(grammar.Parse)

// SDPParser parses session descriptions.
type SDPParser interface {
	ParseSDP(body string) (*sdp.SessionDescription, error)
}

// Transport sends replies built without a transaction.
type Transport interface {
	Send(data string) error
}

// ServerTransaction receives responses built by [Message.Reply].
// Delivery outcome is reported through onSuccess or onFailure, both may be nil.
type ServerTransaction interface {
	ReceiveResponse(code int, data string, onSuccess func(), onFailure func(error))
}

// UserAgent exposes the user agent settings consulted for Supported negotiation.
type UserAgent interface {
	SessionTimers() bool
	PublicGRUU() string
	TemporaryGRUU() string
}

// UAConfig is a static [UserAgent].
type UAConfig struct {
	EnableSessionTimers bool
	PubGRUU             string
	TempGRUU            string
}

func (c UAConfig) SessionTimers() bool { return c.EnableSessionTimers }

func (c UAConfig) PublicGRUU() string { return c.PubGRUU }

func (c UAConfig) TemporaryGRUU() string { return c.TempGRUU }

// Observer is notified about parse and reply outcomes.
// It is satisfied by *metrics.Collector.
type Observer interface {
	OnParse(kind string)
	OnParseFailure(reason string)
	OnReply(mode string, code int)
}

type noopObserver struct{}

func (noopObserver) OnParse(string) {}

func (noopObserver) OnParseFailure(string) {}

func (noopObserver) OnReply(string, int) {}
