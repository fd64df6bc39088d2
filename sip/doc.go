// Package sip parses raw SIP/2.0 text into header-indexed messages
// and builds replies to parsed requests.
//
// A buffer is split into the start line, header fields and body. Well-known
// header fields are validated by a [Grammar] while the buffer is parsed and
// populate derived fields of [Message] (tags, Call-ID, CSeq, etc.), any other
// header field is kept verbatim and can be parsed later with [Message.ParseHeader].
//
// Replies are rendered by [Message.BuildReply] and [Message.BuildStatelessReply]
// and delivered through [ServerTransaction] or [Transport] respectively.
package sip

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/sipmock/sipmock.go -package=sipmock . Grammar,SDPParser,Transport,ServerTransaction,UserAgent,Observer
