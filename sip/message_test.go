package sip_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/keyarea/sip2json-sub001/grammar"
	"github.com/keyarea/sip2json-sub001/internal/testutil/sipmock"
	"github.com/keyarea/sip2json-sub001/sip"
)

func TestMessage_ParseHeader(t *testing.T) {
	t.Parallel()

	data := "SUBSCRIBE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"Expires: 3600\r\n" +
		"Min-Expires: soon\r\n" +
		"X-Custom: anything goes\r\n" +
		"Allow: INVITE, ACK, BYE\r\n" +
		"\r\n"

	ctrl := gomock.NewController(t)
	g := sipmock.NewMockGrammar(ctrl)
	calls := map[string]int{}
	g.EXPECT().Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(text, rule string) (grammar.Value, error) {
			calls[rule]++
			return grammar.Parse(text, rule)
		}).
		AnyTimes()

	msg := mustParse(t, sip.NewParser(&sip.ParserOptions{Grammar: g}), data)

	t.Run("cached", func(t *testing.T) {
		v1, ok1 := msg.ParseHeader("expires", 0)
		v2, ok2 := msg.ParseHeader("Expires", 0)
		if !ok1 || !ok2 {
			t.Fatalf("msg.ParseHeader(\"Expires\", 0) reports absence")
		}
		if v1 != grammar.Uint(3600) || v2 != v1 {
			t.Errorf("msg.ParseHeader(\"Expires\", 0) = (%v, %v), want 3600 twice", v1, v2)
		}
		if calls["Expires"] != 1 {
			t.Errorf("Expires parsed %d times, want 1", calls["Expires"])
		}
	})

	t.Run("first via is cached", func(t *testing.T) {
		v, ok := msg.ParseHeader("v", 0)
		if !ok {
			t.Fatal("msg.ParseHeader(\"v\", 0) reports absence")
		}
		if via, _ := v.(grammar.Via); len(via) != 1 || via[0].Host != "pc33.atlanta.com" {
			t.Errorf("msg.ParseHeader(\"v\", 0) = %v, want Via of pc33.atlanta.com", v)
		}
		if calls["Via"] != 1 {
			t.Errorf("Via parsed %d times, want 1", calls["Via"])
		}
	})

	t.Run("token list", func(t *testing.T) {
		v, ok := msg.ParseHeader("allow", 0)
		if !ok {
			t.Fatal("msg.ParseHeader(\"allow\", 0) reports absence")
		}
		if diff := cmp.Diff(v, grammar.Value(grammar.TokenList{"INVITE", "ACK", "BYE"})); diff != "" {
			t.Errorf("msg.ParseHeader(\"allow\", 0) mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("failure evicts", func(t *testing.T) {
		if _, ok := msg.ParseHeader("Min-Expires", 0); ok {
			t.Error("msg.ParseHeader(\"Min-Expires\", 0) succeeded on malformed value")
		}
		if msg.HasHeader("Min-Expires") {
			t.Error("msg.HasHeader(\"Min-Expires\") = true after failed parse, want false")
		}
	})

	t.Run("unknown rule keeps header", func(t *testing.T) {
		if _, ok := msg.ParseHeader("X-Custom", 0); ok {
			t.Error("msg.ParseHeader(\"X-Custom\", 0) succeeded without a grammar rule")
		}
		if got := msg.GetHeader("x-custom"); got != "anything goes" {
			t.Errorf("msg.GetHeader(\"x-custom\") = %q, want \"anything goes\"", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, ok := msg.ParseHeader("Route", 0); ok {
			t.Error("msg.ParseHeader(\"Route\", 0) succeeded on missing header")
		}
		if _, ok := msg.ParseHeader("Expires", 1); ok {
			t.Error("msg.ParseHeader(\"Expires\", 1) succeeded on missing occurrence")
		}
	})
}

func TestMessage_AddSetHeader(t *testing.T) {
	t.Parallel()

	msg := mustParse(t, sip.NewParser(nil), inviteReq)

	msg.AddHeader("route", "<sip:p1.example.com;lr>")
	msg.AddHeader("Route", "<sip:p2.example.com;lr>")
	if got := msg.CountHeader("Route"); got != 2 {
		t.Fatalf("msg.CountHeader(\"Route\") = %d, want 2", got)
	}
	v, ok := msg.ParseHeader("Route", 1)
	if !ok {
		t.Fatal("msg.ParseHeader(\"Route\", 1) reports absence")
	}
	if list, _ := v.(grammar.AddrList); len(list) != 1 || list[0].Addr.URI.Raw != "sip:p2.example.com;lr" {
		t.Errorf("msg.ParseHeader(\"Route\", 1) = %v, want p2 route", v)
	}

	msg.SetHeader("Max-Forwards", "69")
	if got := msg.GetHeaders("Max-Forwards"); !cmp.Equal(got, []string{"69"}) {
		t.Errorf("msg.GetHeaders(\"Max-Forwards\") = %q, want [69]", got)
	}
	if v, ok := msg.ParseHeader("Max-Forwards", 0); !ok || v != grammar.Uint(69) {
		t.Errorf("msg.ParseHeader(\"Max-Forwards\", 0) = (%v, %v), want (69, true)", v, ok)
	}
}

func TestMessage_CompactNameAccessors(t *testing.T) {
	t.Parallel()

	msg := mustParse(t, sip.NewParser(nil), inviteReq)

	if got, want := msg.GetHeader("i"), "a84b4c76e66710@pc33.atlanta.com"; got != want {
		t.Errorf("msg.GetHeader(\"i\") = %q, want %q", got, want)
	}
	if got := msg.CountHeader("v"); got != 2 {
		t.Errorf("msg.CountHeader(\"v\") = %d, want 2", got)
	}
	if !msg.HasHeader("M") {
		t.Error("msg.HasHeader(\"M\") = false, want true")
	}
	if v, ok := msg.ParseHeader("l", 0); !ok || v != grammar.Uint(0) {
		t.Errorf("msg.ParseHeader(\"l\", 0) = (%v, %v), want (0, true)", v, ok)
	}

	msg.AddHeader("k", "timer")
	if got := msg.GetHeaders("Supported"); !cmp.Equal(got, []string{"timer"}) {
		t.Errorf("msg.GetHeaders(\"Supported\") = %q, want [timer]", got)
	}
	msg.SetHeader("x", "1800")
	if got := msg.GetHeader("Session-Expires"); got != "1800" {
		t.Errorf("msg.GetHeader(\"Session-Expires\") = %q, want \"1800\"", got)
	}
	msg.Headers.Del("k")
	if msg.HasHeader("Supported") {
		t.Error("msg.HasHeader(\"Supported\") = true after msg.Headers.Del(\"k\"), want false")
	}
}

func TestMessage_ParseHeader_AddedAddress(t *testing.T) {
	t.Parallel()

	msg := mustParse(t, sip.NewParser(nil), inviteReq)

	msg.AddHeader("Record-Route", "<sip:p3.example.com;lr>")
	v, ok := msg.ParseHeader("Record-Route", 2)
	if !ok {
		t.Fatal("msg.ParseHeader(\"Record-Route\", 2) reports absence")
	}
	addr, ok := v.(*grammar.NameAddr)
	if !ok {
		t.Fatalf("msg.ParseHeader(\"Record-Route\", 2) = %T, want *grammar.NameAddr", v)
	}
	if got, want := addr.URI.Raw, "sip:p3.example.com;lr"; got != want {
		t.Errorf("addr.URI.Raw = %q, want %q", got, want)
	}

	dispatched, _ := msg.ParseHeader("Record-Route", 0)
	if _, ok := dispatched.(*grammar.NameAddr); !ok {
		t.Errorf("msg.ParseHeader(\"Record-Route\", 0) = %T, want *grammar.NameAddr", dispatched)
	}

	msg.AddHeader("m", "<sip:a@192.0.2.1>, <sip:b@192.0.2.2>")
	v, ok = msg.ParseHeader("Contact", 1)
	if !ok {
		t.Fatal("msg.ParseHeader(\"Contact\", 1) reports absence")
	}
	if list, _ := v.(grammar.AddrList); len(list) != 2 {
		t.Errorf("msg.ParseHeader(\"Contact\", 1) = %v, want 2 addresses", v)
	}
}

func TestMessage_MarshalJSON(t *testing.T) {
	t.Parallel()

	data := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"To: Bob <sip:bob@biloxi.com>\r\n" +
		"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
		"CSeq: 314159 INVITE\r\n" +
		"Content-Type: application/sdp\r\n" +
		"Content-Length: 203\r\n" +
		"\r\n" +
		inviteSDP

	msg := mustParse(t, sip.NewParser(nil), data)
	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("json.Marshal(msg) error = %v, want nil", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	want := map[string]any{
		"kind":       "request",
		"method":     "INVITE",
		"ruri":       "sip:bob@biloxi.com",
		"call_id":    "a84b4c76e66710@pc33.atlanta.com",
		"cseq":       float64(314159),
		"via_branch": "z9hG4bK776asdhds",
		"from_tag":   "1928301774",
		"headers": []any{
			map[string]any{"name": "Via", "value": "SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds"},
			map[string]any{"name": "To", "value": "Bob <sip:bob@biloxi.com>"},
			map[string]any{"name": "From", "value": "Alice <sip:alice@atlanta.com>;tag=1928301774"},
			map[string]any{"name": "Call-ID", "value": "a84b4c76e66710@pc33.atlanta.com"},
			map[string]any{"name": "CSeq", "value": "314159 INVITE"},
			map[string]any{"name": "Content-Type", "value": "application/sdp"},
			map[string]any{"name": "Content-Length", "value": "203"},
		},
		"body": inviteSDP,
		"sdp_media": []any{
			map[string]any{
				"media":   "video",
				"port":    float64(51372),
				"proto":   "RTP/AVP",
				"formats": []any{"31", "32"},
			},
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("json.Marshal(msg) mismatch (-got +want):\n%s", diff)
	}
}

func TestMessage_LogValue(t *testing.T) {
	t.Parallel()

	msg := mustParse(t, sip.NewParser(nil), inviteReq)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("received", "message", msg)

	out := buf.String()
	for _, s := range []string{
		"message.kind=request",
		"message.method=INVITE",
		"message.call_id=a84b4c76e66710@pc33.atlanta.com",
		"message.cseq=314159",
		"message.from_tag=1928301774",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("log output %q does not contain %q", out, s)
		}
	}
}
