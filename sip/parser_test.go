package sip_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pion/sdp/v3"
	"go.uber.org/mock/gomock"

	"github.com/keyarea/sip2json-sub001/grammar"
	"github.com/keyarea/sip2json-sub001/internal/testutil/sipmock"
	"github.com/keyarea/sip2json-sub001/sip"
)

func TestParse_Response(t *testing.T) {
	t.Parallel()

	data := "SIP/2.0 407 Proxy Authentication Required\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bKnashds8;received=192.0.2.1\r\n" +
		"To: Bob <sip:bob@biloxi.com>;tag=X\r\n" +
		"From: Alice <sip:alice@atlanta.com>;tag=Y\r\n" +
		"Call-ID: Z\r\n" +
		"CSeq: 1024 INVITE\r\n" +
		"Proxy-Authenticate: Digest realm=\"atlanta.com\", nonce=\"f84f1cec41e6cbe5aea9c8e88d359\", qop=\"auth\"\r\n" +
		"Content-Length: 0\r\n" +
		"\r\n"

	msg, err := sip.Parse(data)
	if err != nil {
		t.Fatalf("sip.Parse(data) error = %v, want nil", err)
	}

	type summary struct {
		Kind       sip.Kind
		StatusCode int
		Reason     string
		Method     string
		ViaBranch  string
		ToTag      string
		FromTag    string
		CallID     string
		CSeq       uint32
		Body       string
	}
	got := summary{
		msg.Kind, msg.StatusCode, msg.Reason, msg.Method, msg.ViaBranch,
		msg.ToTag, msg.FromTag, msg.CallID, msg.CSeq, msg.Body,
	}
	want := summary{
		Kind:       sip.KindResponse,
		StatusCode: 407,
		Reason:     "Proxy Authentication Required",
		Method:     "INVITE",
		ViaBranch:  "z9hG4bKnashds8",
		ToTag:      "X",
		FromTag:    "Y",
		CallID:     "Z",
		CSeq:       1024,
		Body:       "",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("parsed response mismatch (-got +want):\n%s", diff)
	}
	if !msg.IsResponse() || msg.IsRequest() {
		t.Errorf("msg.IsResponse() = %v, msg.IsRequest() = %v, want true, false", msg.IsResponse(), msg.IsRequest())
	}
	if msg.String() != data {
		t.Error("msg.String() does not return the raw buffer")
	}

	v, ok := msg.ParseHeader("proxy-authenticate", 0)
	if !ok {
		t.Fatal("msg.ParseHeader(\"proxy-authenticate\", 0) reports absence")
	}
	ch, _ := v.(*grammar.Challenge)
	if ch.Realm() != "atlanta.com" || ch.Nonce() != "f84f1cec41e6cbe5aea9c8e88d359" {
		t.Errorf("challenge = %+v, want realm atlanta.com", ch)
	}
}

func TestParse_RequestWithSDP(t *testing.T) {
	t.Parallel()

	if len(inviteSDP) != 203 {
		t.Fatalf("len(inviteSDP) = %d, want 203", len(inviteSDP))
	}
	data := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"Max-Forwards: 70\r\n" +
		"To: Bob <sip:bob@biloxi.com>\r\n" +
		"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
		"CSeq: 314159 INVITE\r\n" +
		"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
		"Content-Type: application/sdp\r\n" +
		"Content-Length: 203\r\n" +
		"\r\n" +
		inviteSDP

	msg, err := sip.Parse(data)
	if err != nil {
		t.Fatalf("sip.Parse(data) error = %v, want nil", err)
	}
	if !msg.IsRequest() || msg.Method != "INVITE" || msg.RequestURI.Raw != "sip:bob@biloxi.com" {
		t.Errorf("request line = (%v, %q, %q), want (request, INVITE, sip:bob@biloxi.com)",
			msg.Kind, msg.Method, msg.RequestURI.Raw)
	}
	if msg.Body != inviteSDP {
		t.Errorf("msg.Body = %q, want %q", msg.Body, inviteSDP)
	}

	sd := msg.SDP()
	if sd == nil {
		t.Fatal("msg.SDP() = nil, want auto-parsed session")
	}
	if len(sd.MediaDescriptions) != 1 {
		t.Fatalf("len(sd.MediaDescriptions) = %d, want 1", len(sd.MediaDescriptions))
	}
	if got := sd.MediaDescriptions[0].MediaName.Media; got != "video" {
		t.Errorf("media type = %q, want \"video\"", got)
	}
	if msg.ParseSDP(false) != sd {
		t.Error("msg.ParseSDP(false) did not return the cached session")
	}
}

func TestParse_SDPNotParsedOnZeroLength(t *testing.T) {
	t.Parallel()

	data := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"Content-Type: application/sdp\r\n" +
		"Content-Length: 0\r\n" +
		"\r\n" +
		inviteSDP

	msg := mustParse(t, sip.NewParser(nil), data)
	if msg.SDP() != nil {
		t.Error("msg.SDP() != nil for zero Content-Length")
	}
	if msg.Body != "" {
		t.Errorf("msg.Body = %q, want empty", msg.Body)
	}
	if sd := msg.ParseSDP(false); sd == nil || len(sd.MediaDescriptions) != 0 {
		t.Errorf("msg.ParseSDP(false) = %+v, want empty session", sd)
	}
}

func TestParse_ForceSDP(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sdpParser := sipmock.NewMockSDPParser(ctrl)
	sdpParser.EXPECT().ParseSDP(inviteSDP).
		DoAndReturn(func(body string) (*sdp.SessionDescription, error) {
			return sip.PionSDP.ParseSDP(body)
		}).
		Times(2)

	data := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Content-Type: application/sdp\r\n" +
		"l: 203\r\n" +
		"\r\n" +
		inviteSDP

	msg := mustParse(t, sip.NewParser(&sip.ParserOptions{SDP: sdpParser}), data)
	first := msg.SDP()
	if first == nil {
		t.Fatal("msg.SDP() = nil, want auto-parsed session")
	}
	if msg.ParseSDP(false) != first {
		t.Error("msg.ParseSDP(false) parsed the body again")
	}
	if msg.ParseSDP(true) == first {
		t.Error("msg.ParseSDP(true) returned the cached session")
	}
}

func TestParse_ContentLength(t *testing.T) {
	t.Parallel()

	head := "MESSAGE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"Content-Type: text/plain\r\n"

	cases := []struct {
		name string
		data string
		want string
	}{
		{"exact", head + "Content-Length: 5\r\n\r\nhello", "hello"},
		{"trailing bytes", head + "Content-Length: 5\r\n\r\nhello world\r\n\r\n", "hello"},
		{"multibyte", head + "Content-Length: 6\r\n\r\nhéllo!!", "héllo"},
		{"short buffer", head + "Content-Length: 50\r\n\r\nhello", "hello"},
		{"absent", head + "\r\nhello world", "hello world"},
		{"compact", head + "l: 4\r\n\r\nhello", "hell"},
	}

	p := sip.NewParser(nil)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			msg := mustParse(t, p, c.data)
			if msg.Body != c.want {
				t.Errorf("msg.Body = %q, want %q", msg.Body, c.want)
			}
		})
	}
}

func TestParse_Folding(t *testing.T) {
	t.Parallel()

	data := "OPTIONS sip:carol@chicago.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com\r\n ;branch=z9hG4bKhjhs8ass877\r\n" +
		"Subject: I know you're there,\r\n\tpick up the phone\r\n" +
		"Call-ID: a84b4c76e66710\r\n" +
		"\r\n"

	msg := mustParse(t, sip.NewParser(nil), data)
	if got := msg.CountHeader("Subject"); got != 1 {
		t.Fatalf("msg.CountHeader(\"Subject\") = %d, want 1", got)
	}
	if got, want := msg.GetHeader("Subject"), "I know you're there,\r\n\tpick up the phone"; got != want {
		t.Errorf("msg.GetHeader(\"Subject\") = %q, want %q", got, want)
	}
	if msg.ViaBranch != "z9hG4bKhjhs8ass877" {
		t.Errorf("msg.ViaBranch = %q, want \"z9hG4bKhjhs8ass877\"", msg.ViaBranch)
	}
	if msg.CallID != "a84b4c76e66710" {
		t.Errorf("msg.CallID = %q, want \"a84b4c76e66710\"", msg.CallID)
	}
	if got, want := msg.Headers.Names(), []string{"Via", "Subject", "Call-ID"}; !cmp.Equal(got, want) {
		t.Errorf("msg.Headers.Names() = %q, want %q", got, want)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	msg := mustParse(t, sip.NewParser(nil), inviteReq)

	want := map[string][]string{
		"Via": {
			"SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds",
			"SIP/2.0/UDP bigbox3.site3.atlanta.com;branch=z9hG4bK77ef4c2312983.1",
		},
		"Record-Route":   {"<sip:p1.example.com;lr>", "<sip:p2.example.com;lr>"},
		"Max-Forwards":   {"70"},
		"To":             {"Bob <sip:bob@biloxi.com>"},
		"From":           {"Alice <sip:alice@atlanta.com>;tag=1928301774"},
		"Call-ID":        {"a84b4c76e66710@pc33.atlanta.com"},
		"CSeq":           {"314159 INVITE"},
		"Contact":        {"<sip:alice@pc33.atlanta.com>"},
		"Content-Length": {"0"},
	}
	for name, vals := range want {
		if got := msg.GetHeaders(name); !cmp.Equal(got, vals) {
			t.Errorf("msg.GetHeaders(%q) = %q, want %q", name, got, vals)
		}
		if got := msg.GetHeader(name); got != vals[0] {
			t.Errorf("msg.GetHeader(%q) = %q, want %q", name, got, vals[0])
		}
	}
	wantNames := []string{"Via", "Record-Route", "Max-Forwards", "To", "From", "Call-ID", "CSeq", "Contact", "Content-Length"}
	if got := msg.Headers.Names(); !cmp.Equal(got, wantNames) {
		t.Errorf("msg.Headers.Names() = %q, want %q", got, wantNames)
	}
	if len(msg.Via) != 1 || msg.Via[0].Host != "pc33.atlanta.com" {
		t.Errorf("msg.Via = %v, want first Via header", msg.Via)
	}
	if msg.ToTag != "" || msg.FromTag != "1928301774" || msg.CSeq != 314159 {
		t.Errorf("derived fields = (%q, %q, %d), want (\"\", \"1928301774\", 314159)", msg.ToTag, msg.FromTag, msg.CSeq)
	}
}

func TestParse_CompactForms(t *testing.T) {
	t.Parallel()

	long := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"To: Bob <sip:bob@biloxi.com>\r\n" +
		"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
		"CSeq: 314159 INVITE\r\n" +
		"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
		"Session-Expires: 1800;refresher=uac\r\n" +
		"Refer-To: <sip:carol@chicago.example.com>\r\n" +
		"Event: refer;id=93809824\r\n" +
		"Supported: timer\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Length: 5\r\n" +
		"\r\n" +
		"hello"
	compact := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"v: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"t: Bob <sip:bob@biloxi.com>\r\n" +
		"F: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"i: a84b4c76e66710@pc33.atlanta.com\r\n" +
		"cseq: 314159 INVITE\r\n" +
		"m: <sip:alice@pc33.atlanta.com>\r\n" +
		"x: 1800;refresher=uac\r\n" +
		"r: <sip:carol@chicago.example.com>\r\n" +
		"o: refer;id=93809824\r\n" +
		"k: timer\r\n" +
		"c: text/plain\r\n" +
		"l: 5\r\n" +
		"\r\n" +
		"hello"

	type summary struct {
		Names                   []string
		ViaBranch               string
		FromTag                 string
		ToTag                   string
		CallID                  string
		CSeq                    uint32
		SessionExpires          uint32
		SessionExpiresRefresher string
		ReferTo                 string
		Event                   string
		Body                    string
	}
	summarize := func(msg *sip.Message) summary {
		return summary{
			Names:                   msg.Headers.Names(),
			ViaBranch:               msg.ViaBranch,
			FromTag:                 msg.FromTag,
			ToTag:                   msg.ToTag,
			CallID:                  msg.CallID,
			CSeq:                    msg.CSeq,
			SessionExpires:          msg.SessionExpires,
			SessionExpiresRefresher: msg.SessionExpiresRefresher,
			ReferTo:                 msg.ReferTo.URI.Raw,
			Event:                   msg.Event.Type,
			Body:                    msg.Body,
		}
	}

	p := sip.NewParser(nil)
	got := summarize(mustParse(t, p, compact))
	want := summarize(mustParse(t, p, long))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("compact form mismatch (-got +want):\n%s", diff)
	}
	if want.SessionExpires != 1800 || want.SessionExpiresRefresher != "uac" || want.Event != "refer" {
		t.Errorf("derived fields = %+v, want Session-Expires 1800 uac and Event refer", want)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	valid := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n"

	cases := []struct {
		name      string
		data      string
		wantState sip.ParseState
		wantErr   error
		wantHdr   *sip.HeaderError
	}{
		{
			name:      "start line",
			data:      "INVITE sip:bob@biloxi.com\r\n\r\n",
			wantState: sip.ParseStateStart,
			wantErr:   grammar.ErrMalformedInput,
		},
		{
			name:      "status code",
			data:      "SIP/2.0 99 Weird\r\n\r\n",
			wantState: sip.ParseStateStart,
			wantErr:   grammar.ErrMalformedInput,
		},
		{
			name:      "no header terminator",
			data:      valid + "To: <sip:bob@biloxi.com>",
			wantState: sip.ParseStateHeaders,
			wantErr:   sip.ErrMalformedHeaders,
		},
		{
			name:      "no colon",
			data:      valid + "Bogus\r\n\r\n",
			wantState: sip.ParseStateHeaders,
			wantErr:   sip.ErrMalformedHeaders,
		},
		{
			name:      "first via",
			data:      "OPTIONS sip:bob@biloxi.com SIP/2.0\r\nVia: garbage\r\n\r\n",
			wantState: sip.ParseStateHeaders,
			wantErr:   grammar.ErrMalformedInput,
			wantHdr:   &sip.HeaderError{Name: "Via", Value: "garbage"},
		},
		{
			name:      "from",
			data:      valid + "f: <sip:alice@atlanta.com\r\n\r\n",
			wantState: sip.ParseStateHeaders,
			wantErr:   grammar.ErrMalformedInput,
			wantHdr:   &sip.HeaderError{Name: "From", Value: "<sip:alice@atlanta.com"},
		},
		{
			name:      "cseq",
			data:      valid + "CSeq: INVITE\r\n\r\n",
			wantState: sip.ParseStateHeaders,
			wantErr:   grammar.ErrMalformedInput,
			wantHdr:   &sip.HeaderError{Name: "CSeq", Value: "INVITE"},
		},
		{
			name:      "content length",
			data:      valid + "Content-Length: ten\r\n\r\n",
			wantState: sip.ParseStateHeaders,
			wantErr:   grammar.ErrMalformedInput,
			wantHdr:   &sip.HeaderError{Name: "Content-Length", Value: "ten"},
		},
		{
			name:      "record route",
			data:      valid + "Record-Route: sip:p1.example.com\r\n\r\n",
			wantState: sip.ParseStateHeaders,
			wantErr:   grammar.ErrMalformedInput,
			wantHdr:   &sip.HeaderError{Name: "Record-Route", Value: "sip:p1.example.com"},
		},
		{
			name:      "empty call id",
			data:      valid + "Call-ID:\r\n\r\n",
			wantState: sip.ParseStateHeaders,
			wantErr:   grammar.ErrEmptyInput,
			wantHdr:   &sip.HeaderError{Name: "Call-ID", Value: ""},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			msg, err := sip.Parse(c.data)
			if msg != nil {
				t.Errorf("sip.Parse(data) message = %v, want nil", msg)
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("sip.Parse(data) error = %v, want %v", err, c.wantErr)
			}

			var perr *sip.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("sip.Parse(data) error = %v, want *sip.ParseError", err)
			}
			if perr.State != c.wantState {
				t.Errorf("perr.State = %v, want %v", perr.State, c.wantState)
			}

			var herr *sip.HeaderError
			if c.wantHdr == nil {
				if errors.As(err, &herr) {
					t.Errorf("sip.Parse(data) error = %v, want no *sip.HeaderError", err)
				}
				return
			}
			if !errors.As(err, &herr) {
				t.Fatalf("sip.Parse(data) error = %v, want *sip.HeaderError", err)
			}
			if herr.Name != c.wantHdr.Name || herr.Value != c.wantHdr.Value {
				t.Errorf("header error = (%q, %q), want (%q, %q)", herr.Name, herr.Value, c.wantHdr.Name, c.wantHdr.Value)
			}
			if !perr.Grammar() {
				t.Error("perr.Grammar() = false, want true")
			}
		})
	}
}

func TestParse_NotMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	obs := sipmock.NewMockObserver(ctrl)
	obs.EXPECT().OnParseFailure(sip.FailureNotMessage)

	p := sip.NewParser(&sip.ParserOptions{Observer: obs})
	msg, err := p.Parse("\x00\x01 keep-alive")
	if msg != nil || !errors.Is(err, sip.ErrNotMessage) {
		t.Errorf("p.Parse(data) = (%v, %v), want (nil, %v)", msg, err, sip.ErrNotMessage)
	}
}

func TestParse_SubsequentViaNotParsed(t *testing.T) {
	t.Parallel()

	data := "BYE sip:bob@192.0.2.4 SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bKnashds10\r\n" +
		"v: garbage\r\n" +
		"\r\n"

	msg := mustParse(t, sip.NewParser(nil), data)
	if got := msg.CountHeader("Via"); got != 2 {
		t.Fatalf("msg.CountHeader(\"Via\") = %d, want 2", got)
	}
	if msg.ViaBranch != "z9hG4bKnashds10" {
		t.Errorf("msg.ViaBranch = %q, want \"z9hG4bKnashds10\"", msg.ViaBranch)
	}
	if _, ok := msg.ParseHeader("Via", 1); ok {
		t.Error("msg.ParseHeader(\"Via\", 1) succeeded on malformed value")
	}
	if got := msg.GetHeaders("Via"); len(got) != 1 || !strings.Contains(got[0], "z9hG4bKnashds10") {
		t.Errorf("msg.GetHeaders(\"Via\") = %q, want only the first Via", got)
	}
}

func TestParse_AddrLists(t *testing.T) {
	t.Parallel()

	data := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
		"Record-Route: <sip:p1.example.com;lr>, <sip:p2.example.com;lr>\r\n" +
		"Record-Route: <sip:p3.example.com;lr>\r\n" +
		"m: \"Alice\" <sip:alice@pc33.atlanta.com>;expires=3600, <sip:alice@192.0.2.4>\r\n" +
		"\r\n"

	msg := mustParse(t, sip.NewParser(nil), data)
	wantRR := []string{"<sip:p1.example.com;lr>", "<sip:p2.example.com;lr>", "<sip:p3.example.com;lr>"}
	if got := msg.GetHeaders("Record-Route"); !cmp.Equal(got, wantRR) {
		t.Errorf("msg.GetHeaders(\"Record-Route\") = %q, want %q", got, wantRR)
	}
	wantContact := []string{"\"Alice\" <sip:alice@pc33.atlanta.com>;expires=3600", "<sip:alice@192.0.2.4>"}
	if got := msg.GetHeaders("Contact"); !cmp.Equal(got, wantContact) {
		t.Errorf("msg.GetHeaders(\"Contact\") = %q, want %q", got, wantContact)
	}

	v, ok := msg.ParseHeader("contact", 0)
	if !ok {
		t.Fatal("msg.ParseHeader(\"contact\", 0) reports absence")
	}
	addr, _ := v.(*grammar.NameAddr)
	if addr == nil || addr.DisplayName != "Alice" {
		t.Fatalf("msg.ParseHeader(\"contact\", 0) = %#v, want *grammar.NameAddr of Alice", v)
	}
	if exp, _ := addr.Param("expires"); exp != "3600" {
		t.Errorf("contact expires = %q, want \"3600\"", exp)
	}
}

func TestParse_GrammarRules(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	g := sipmock.NewMockGrammar(ctrl)
	var rules []string
	g.EXPECT().Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(text, rule string) (grammar.Value, error) {
			rules = append(rules, rule)
			return grammar.Parse(text, rule)
		}).
		AnyTimes()

	obs := sipmock.NewMockObserver(ctrl)
	obs.EXPECT().OnParse("request")

	mustParse(t, sip.NewParser(&sip.ParserOptions{Grammar: g, Observer: obs}), inviteReq)

	want := []string{
		"Request_Response",
		"Via",
		"Record_Route",
		"Max_Forwards",
		"To",
		"From",
		"Call_ID",
		"CSeq",
		"Contact",
		"Content_Length",
	}
	if diff := cmp.Diff(rules, want); diff != "" {
		t.Errorf("grammar rules mismatch (-got +want):\n%s", diff)
	}
}

func TestParse_UnexpectedAddrListValue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	g := sipmock.NewMockGrammar(ctrl)
	g.EXPECT().Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(text, rule string) (grammar.Value, error) {
			if rule == grammar.RuleContact {
				return grammar.Uint(1), nil
			}
			return grammar.Parse(text, rule)
		}).
		AnyTimes()

	_, err := sip.NewParser(&sip.ParserOptions{Grammar: g}).Parse(inviteReq)
	if !errors.Is(err, grammar.ErrMalformedInput) {
		t.Errorf("p.Parse(data) error = %v, want %v", err, grammar.ErrMalformedInput)
	}
	var herr *sip.HeaderError
	if !errors.As(err, &herr) {
		t.Fatalf("p.Parse(data) error = %v, want *sip.HeaderError", err)
	}
	if herr.Name != "Contact" {
		t.Errorf("herr.Name = %q, want \"Contact\"", herr.Name)
	}
}
