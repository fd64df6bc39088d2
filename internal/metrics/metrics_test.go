package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/keyarea/sip2json-sub001/internal/metrics"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewPedanticRegistry()
	c := metrics.New(reg)

	c.OnParse("request")
	c.OnParse("request")
	c.OnParse("response")
	c.OnParseFailure("not_message")
	c.OnReply(metrics.ModeStateless, 404)
	c.OnReply(metrics.ModeStateful, 200)
	c.OnReply(metrics.ModeStateful, 180)

	want := `
# HELP sip_messages_parsed_total Total number of successfully parsed SIP messages.
# TYPE sip_messages_parsed_total counter
sip_messages_parsed_total{kind="request"} 2
sip_messages_parsed_total{kind="response"} 1
# HELP sip_parse_failures_total Total number of buffers rejected by the parser.
# TYPE sip_parse_failures_total counter
sip_parse_failures_total{reason="not_message"} 1
# HELP sip_replies_total Total number of replies handed to a transaction or transport.
# TYPE sip_replies_total counter
sip_replies_total{class="1xx",mode="stateful"} 1
sip_replies_total{class="2xx",mode="stateful"} 1
sip_replies_total{class="4xx",mode="stateless"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want)); err != nil {
		t.Error(err)
	}
}

func TestCollector_Nil(t *testing.T) {
	t.Parallel()

	var c *metrics.Collector
	c.OnParse("request")
	c.OnParseFailure("start_line")
	c.OnReply(metrics.ModeStateful, 200)
}

func TestNew_NilRegisterer(t *testing.T) {
	t.Parallel()

	c1 := metrics.New(nil)
	c2 := metrics.New(nil)
	c1.OnParse("request")
	c2.OnParse("request")
}
