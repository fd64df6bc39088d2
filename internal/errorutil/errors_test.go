package errorutil_test

import (
	"errors"
	"io"
	"testing"

	"github.com/keyarea/sip2json-sub001/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

type grammarErr struct{}

func (grammarErr) Error() string { return "grammar" }

func (grammarErr) Grammar() bool { return true }

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"error", []any{io.EOF}, "sentinel: EOF", []error{errSentinel, io.EOF}},
		{"wrapped", []any{errorutil.NewWrapperError(errSentinel, "x")}, "sentinel: x", []error{errSentinel}},
		{"string", []any{"bad value"}, "sentinel: bad value", []error{errSentinel}},
		{"format", []any{"bad value %d", 42}, "sentinel: bad value 42", []error{errSentinel}},
		{"unknown", []any{42}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			for _, target := range c.wantIs {
				if !errors.Is(err, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", err, target)
				}
			}
		})
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	if err := errorutil.JoinPrefix("close", nil, nil); err != nil {
		t.Errorf("errorutil.JoinPrefix(close, nil, nil) = %v, want nil", err)
	}

	err := errorutil.JoinPrefix("close:", io.EOF)
	if got, want := err.Error(), "close: EOF"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}

	err = errorutil.JoinPrefix("close", io.EOF, io.ErrClosedPipe)
	if got, want := err.Error(), "close\n  - EOF\n  - io: read/write on closed pipe"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("errors.Is(err, io.ErrClosedPipe) = false, want true")
	}
}

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	if !errorutil.IsGrammarErr(errorutil.NewWrapperError(errSentinel, grammarErr{})) {
		t.Error("errorutil.IsGrammarErr(wrapped grammar error) = false, want true")
	}
	if errorutil.IsGrammarErr(io.EOF) {
		t.Error("errorutil.IsGrammarErr(io.EOF) = true, want false")
	}
}
