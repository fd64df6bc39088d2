package sip

import (
	"fmt"

	"github.com/keyarea/sip2json-sub001/internal/errorutil"
)

// Error represents a SIP error.
// See [errorutil.Error].
type Error = errorutil.Error

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

// Parse errors.
const (
	// ErrNotMessage is returned when the buffer has no line terminator at all.
	ErrNotMessage Error = "not a SIP message"
	// ErrMalformedHeaders is returned when the header block has no terminator
	// or a header field has no name.
	ErrMalformedHeaders Error = "malformed header block"
)

// Reply errors.
const (
	ErrInvalidStatusCode   Error = "invalid status code"
	ErrNotRequest          Error = "message is not a request"
	ErrNoServerTransaction Error = "no server transaction"
	ErrNoTransport         Error = "no transport"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// ParseError represents an error that occurred during parsing.
//
// It contains the error that occurred, the current parsing state and the bytes that caused the error.
type ParseError struct {
	Err   error
	State ParseState
	Buf   []byte
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

func (err *ParseError) Grammar() bool { return errorutil.IsGrammarErr(err.Err) }

type ParseState int

const (
	ParseStateStart   ParseState = iota // parsing message start line
	ParseStateHeaders                   // parsing message headers
)

func (s ParseState) String() string {
	switch s {
	case ParseStateStart:
		return "start"
	case ParseStateHeaders:
		return "headers"
	default:
		return fmt.Sprintf("ParseState(%d)", int(s))
	}
}

// HeaderError is returned when a well-known header field fails the grammar.
type HeaderError struct {
	Name  string
	Value string
	Err   error
}

func (err *HeaderError) Error() string {
	return fmt.Sprintf("error parsing header %q with value %q: %v", err.Name, err.Value, err.Err)
}

func (err *HeaderError) Unwrap() error { return err.Err }

func (err *HeaderError) Grammar() bool { return errorutil.IsGrammarErr(err.Err) }
