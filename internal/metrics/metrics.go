// Package metrics exports Prometheus counters for SIP parsing and replies.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sip"

// Reply modes.
const (
	ModeStateful  = "stateful"
	ModeStateless = "stateless"
)

// Collector counts parsed messages, parse failures and sent replies.
// A nil *Collector is valid and counts nothing.
type Collector struct {
	parsed   *prometheus.CounterVec
	failures *prometheus.CounterVec
	replies  *prometheus.CounterVec
}

// New creates a collector and registers its metrics in reg.
// If reg is nil, the metrics are created but not registered.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		parsed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_parsed_total",
			Help:      "Total number of successfully parsed SIP messages.",
		}, []string{"kind"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Total number of buffers rejected by the parser.",
		}, []string{"reason"}),
		replies: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_total",
			Help:      "Total number of replies handed to a transaction or transport.",
		}, []string{"mode", "class"}),
	}
}

// OnParse counts a parsed message of the given kind.
func (c *Collector) OnParse(kind string) {
	if c == nil {
		return
	}
	c.parsed.WithLabelValues(kind).Inc()
}

// OnParseFailure counts a rejected buffer.
func (c *Collector) OnParseFailure(reason string) {
	if c == nil {
		return
	}
	c.failures.WithLabelValues(reason).Inc()
}

// OnReply counts a reply sent in the given mode.
// Replies are labeled by status class, e.g. "2xx".
func (c *Collector) OnReply(mode string, code int) {
	if c == nil {
		return
	}
	c.replies.WithLabelValues(mode, strconv.Itoa(code/100)+"xx").Inc()
}
