// Package grammar implements rule-keyed parsers for SIP start lines and header values.
//
// Rule keys are canonical header names with hyphens replaced by underscores,
// e.g. "Record_Route" or "Call_ID". Matching of rule keys is case-insensitive.
package grammar

//go:generate go tool errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/keyarea/sip2json-sub001/internal/errorutil"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

// Grammar marks the error as a grammar error.
func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
	ErrUnknownRule    Error = "unknown rule"
	ErrNodeNotFound   Error = "node not found"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// Value is a successfully parsed production.
// The concrete type depends on the rule, see [Parse].
type Value any

// Rule keys.
const (
	RuleRequestResponse    = "Request_Response"
	RuleVia                = "Via"
	RuleFrom               = "From"
	RuleTo                 = "To"
	RuleContact            = "Contact"
	RuleRecordRoute        = "Record_Route"
	RuleRoute              = "Route"
	RuleCallID             = "Call_ID"
	RuleCSeq               = "CSeq"
	RuleContentLength      = "Content_Length"
	RuleContentType        = "Content_Type"
	RuleMaxForwards        = "Max_Forwards"
	RuleWWWAuthenticate    = "WWW_Authenticate"
	RuleProxyAuthenticate  = "Proxy_Authenticate"
	RuleReplaces           = "Replaces"
	RuleSessionExpires     = "Session_Expires"
	RuleReferTo            = "Refer_To"
	RuleEvent              = "Event"
	RuleSubscriptionState  = "Subscription_State"
	RuleReason             = "Reason"
	RuleAllow              = "Allow"
	RuleSupported          = "Supported"
	RuleRequire            = "Require"
	RuleExpires            = "Expires"
	RuleMinExpires         = "Min_Expires"
	RuleMinSE              = "Min_SE"
	RuleAllowEvents        = "Allow_Events"
	RuleProxyRequire       = "Proxy_Require"
	RuleUnsupported        = "Unsupported"
	RuleReplyTo            = "Reply_To"
	RulePath               = "Path"
	RuleServiceRoute       = "Service_Route"
	RulePAssertedIdentity  = "P_Asserted_Identity"
	RulePPreferredIdentity = "P_Preferred_Identity"
)

type parseFunc func(s string) (Value, error)

var rules = map[string]parseFunc{}

func init() {
	for rule, fn := range map[string]parseFunc{
		RuleRequestResponse:    parseStartLine,
		RuleVia:                parseVia,
		RuleFrom:               parseNameAddrValue,
		RuleTo:                 parseNameAddrValue,
		RuleReferTo:            parseNameAddrValue,
		RuleReplyTo:            parseNameAddrValue,
		RulePAssertedIdentity:  parseNameAddrValue,
		RulePPreferredIdentity: parseNameAddrValue,
		RuleContact:            parseContact,
		RuleRecordRoute:        parseRouteList,
		RuleRoute:              parseRouteList,
		RulePath:               parseRouteList,
		RuleServiceRoute:       parseRouteList,
		RuleCallID:             parseCallID,
		RuleCSeq:               parseCSeq,
		RuleContentLength:      parseUint,
		RuleMaxForwards:        parseUint,
		RuleExpires:            parseUint,
		RuleMinExpires:         parseUint,
		RuleMinSE:              parseUint,
		RuleContentType:        parseMIMEType,
		RuleWWWAuthenticate:    parseChallenge,
		RuleProxyAuthenticate:  parseChallenge,
		RuleReplaces:           parseReplaces,
		RuleSessionExpires:     parseSessionExpires,
		RuleEvent:              parseEvent,
		RuleSubscriptionState:  parseSubscriptionState,
		RuleReason:             parseReason,
		RuleAllow:              parseTokenList,
		RuleSupported:          parseTokenList,
		RuleRequire:            parseTokenList,
		RuleProxyRequire:       parseTokenList,
		RuleUnsupported:        parseTokenList,
		RuleAllowEvents:        parseTokenList,
	} {
		rules[strings.ToLower(rule)] = fn
	}
}

// HasRule reports whether the rule key is known.
func HasRule(rule string) bool {
	_, ok := rules[strings.ToLower(rule)]
	return ok
}

// Parse parses text according to the rule.
//
// Value types per rule:
//   - Request_Response: *[StartLine]
//   - Via: [Via]
//   - From, To, Refer_To, Reply_To, P_Asserted_Identity, P_Preferred_Identity: *[NameAddr]
//   - Contact, Record_Route, Route, Path, Service_Route: [AddrList]
//   - Call_ID: [CallID]
//   - CSeq: *[CSeq]
//   - Content_Length, Max_Forwards, Expires, Min_Expires, Min_SE: [Uint]
//   - Content_Type: *[MIMEType]
//   - WWW_Authenticate, Proxy_Authenticate: *[Challenge]
//   - Replaces: *[Replaces]
//   - Session_Expires: *[SessionExpires]
//   - Event: *[Event]
//   - Subscription_State: *[SubscriptionState]
//   - Reason: *[Reason]
//   - Allow, Supported, Require, Proxy_Require, Unsupported, Allow_Events: [TokenList]
//
// Errors wrap [ErrEmptyInput], [ErrMalformedInput] or [ErrUnknownRule].
func Parse(text, rule string) (Value, error) {
	fn, ok := rules[strings.ToLower(rule)]
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownRule, "%q", rule))
	}
	return errtrace.Wrap2(fn(text))
}
