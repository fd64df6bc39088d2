package grammar

import "github.com/ghettovoice/abnf"

func lit(c byte) abnf.Operator { return abnf.Literal(string(c), []byte{c}) }

func rng(key string, low, high byte) abnf.Operator {
	return abnf.Range(key, []byte{low}, []byte{high})
}

// oneOf matches a single byte from set.
func oneOf(key, set string) abnf.Operator {
	ops := make([]abnf.Operator, len(set))
	for i := 0; i < len(set); i++ {
		ops[i] = lit(set[i])
	}
	return abnf.AltFirst(key, ops[0], ops[1:]...)
}

func token(key string) abnf.Operator { return abnf.Repeat1Inf(key, tokenChar) }

func digits(key string) abnf.Operator { return abnf.Repeat1Inf(key, digit) }

// sep matches c surrounded by optional whitespace.
func sep(key string, c byte) abnf.Operator { return abnf.Concat(key, sws, lit(c), sws) }

// list matches a comma-separated list of at least one item.
func list(key string, item abnf.Operator) abnf.Operator {
	return abnf.Concat(key, item, abnf.Repeat0Inf(key+"-tail", abnf.Concat(key+"-next", sep("COMMA", ','), item)))
}

// uri matches scheme ":" 1*char, the scheme node is keyed "scheme".
func uri(key string, char abnf.Operator) abnf.Operator {
	return abnf.Concat(key, scheme, lit(':'), abnf.Repeat1Inf("hier-part", char))
}

// withParams matches op followed by *( SEMI generic-param ).
func withParams(key string, op abnf.Operator) abnf.Operator {
	return abnf.Concat(key, op, params)
}

var (
	alpha    = abnf.AltFirst("ALPHA", rng("%x41-5A", 'A', 'Z'), rng("%x61-7A", 'a', 'z'))
	digit    = rng("DIGIT", '0', '9')
	hexdig   = abnf.AltFirst("HEXDIG", digit, rng("%x41-46", 'A', 'F'), rng("%x61-66", 'a', 'f'))
	nonASCII = rng("UTF8-NONASCII", 0x80, 0xFF)
	wsp      = oneOf("WSP", " \t\r\n")
	lws      = abnf.Repeat1Inf("LWS", wsp)
	sws      = abnf.Repeat0Inf("SWS", wsp)

	tokenChar = abnf.AltFirst("token-char", alpha, digit, oneOf("token-mark", "-.!%*_+`'~"))
	wordChar  = abnf.AltFirst("word-char", tokenChar, oneOf("word-mark", "()<>:\\\"/[]?{}"))
	paramChar = abnf.AltFirst("param-char", tokenChar, oneOf("param-mark", ":[]"))

	quotedPair   = abnf.Concat("quoted-pair", lit('\\'), rng("%x00-FF", 0x00, 0xFF))
	qdtext       = abnf.AltFirst("qdtext", wsp, lit('!'), rng("%x23-5B", 0x23, 0x5B), rng("%x5D-7E", 0x5D, 0x7E), nonASCII)
	quotedString = abnf.Concat(
		"quoted-string",
		lit('"'),
		abnf.Repeat0Inf("qcontent", abnf.AltFirst("qchar", quotedPair, qdtext)),
		lit('"'),
	)
	paramValue = abnf.Repeat1Inf("param-value", paramChar)

	genericParam = abnf.Concat(
		"generic-param",
		token("param-name"),
		abnf.Optional("param-assign", abnf.Concat("param-eq", sep("EQUAL", '='), abnf.AltFirst("gen-value", quotedString, paramValue))),
	)
	params = abnf.Repeat0Inf("params", abnf.Concat("param", sep("SEMI", ';'), genericParam))

	hostname = abnf.Repeat1Inf("hostname", abnf.AltFirst("host-char", alpha, digit, oneOf("host-mark", ".-")))
	ipv6Ref  = abnf.Concat(
		"IPv6reference",
		lit('['),
		abnf.Repeat1Inf("IPv6address", abnf.AltFirst("ipv6-char", hexdig, oneOf("ipv6-mark", ":."))),
		lit(']'),
	)
	host = abnf.AltFirst("host", ipv6Ref, hostname)

	scheme = abnf.Concat(
		"scheme",
		alpha,
		abnf.Repeat0Inf("scheme-tail", abnf.AltFirst("scheme-char", alpha, digit, oneOf("scheme-mark", "+-."))),
	)
	// Visible ASCII except '"', '<' and '>'.
	uriChar = abnf.AltFirst("uri-char", lit('!'), rng("%x23-3B", 0x23, 0x3B), lit('='), rng("%x3F-7E", 0x3F, 0x7E), nonASCII)
	// Same as uriChar without ',' and ';', which delimit an unbracketed address.
	bareURIChar = abnf.AltFirst(
		"bare-uri-char",
		lit('!'), rng("%x23-2B", 0x23, 0x2B), rng("%x2D-3A", 0x2D, 0x3A), lit('='), rng("%x3F-7E", 0x3F, 0x7E), nonASCII,
	)
	absoluteURI = uri("absoluteURI", uriChar)

	displayName = abnf.AltFirst(
		"display-name",
		quotedString,
		abnf.Concat(
			"display-tokens",
			token("display-token"),
			abnf.Repeat0Inf("display-tail", abnf.Concat("display-next", lws, token("display-token"))),
		),
	)
	nameAddr = abnf.Concat(
		"name-addr",
		abnf.Optional("display", abnf.Concat("display-part", displayName, sws)),
		lit('<'),
		uri("addr-spec", uriChar),
		lit('>'),
	)
	addrSpec  = uri("addr-spec", bareURIChar)
	addrParam = withParams("addr-param", abnf.AltFirst("addr", nameAddr, addrSpec))

	contactSet = list("contact", addrParam)
	routeSet   = list("route", withParams("addr-param", nameAddr))

	sentProtocol = abnf.Concat(
		"sent-protocol",
		token("protocol-name"), sep("SLASH", '/'),
		token("protocol-version"), sep("SLASH", '/'),
		token("transport"),
	)
	sentBy  = abnf.Concat("sent-by", host, abnf.Optional("sent-by-port", abnf.Concat("port-part", sep("COLON", ':'), digits("port"))))
	viaParm = abnf.Concat("via-parm", sentProtocol, lws, sentBy, params)
	via     = list("via", viaParm)

	callID    = abnf.Concat("callid", abnf.Repeat1Inf("word", wordChar), abnf.Optional("callid-host", abnf.Concat("callid-at", lit('@'), abnf.Repeat1Inf("word", wordChar))))
	cseq      = abnf.Concat("CSeq", digits("seq-num"), lws, token("Method"))
	delta     = digits("delta")
	mediaType = withParams("media-type", abnf.Concat("m-type-subtype", token("m-type"), sep("SLASH", '/'), token("m-subtype")))
	challenge = abnf.Concat("challenge", token("auth-scheme"), lws, list("auth-params", genericParam))
	replaces  = withParams("replaces", callID)
	sessExp   = withParams("session-expires", digits("delta-seconds"))
	event     = withParams("event", token("event-type"))
	substate  = withParams("substate", token("substate-value"))
	reason    = withParams("reason", token("protocol"))
	tokens    = list("tokens", token("list-token"))

	sipVersion = abnf.Concat(
		"SIP-Version",
		abnf.Repeat1Inf("version-name", alpha), lit('/'),
		digits("version-major"), lit('.'), digits("version-minor"),
	)
	requestLine = abnf.Concat("Request-Line", token("Method"), lit(' '), uri("Request-URI", uriChar), lit(' '), sipVersion)
	statusLine  = abnf.Concat(
		"Status-Line",
		sipVersion, lit(' '),
		abnf.Concat("Status-Code", digit, digit, digit),
		abnf.Optional("reason-part", abnf.Concat(
			"reason-sep",
			lit(' '),
			abnf.Repeat0Inf("Reason-Phrase", abnf.AltFirst("reason-char", rng("%x00-09", 0x00, 0x09), rng("%x0B-0C", 0x0B, 0x0C), rng("%x0E-FF", 0x0E, 0xFF))),
		)),
	)
	startLine = abnf.AltFirst("Request-Response", statusLine, requestLine)
)
