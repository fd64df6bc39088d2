package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"braces.dev/errtrace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/keyarea/sip2json-sub001/internal/errorutil"
	"github.com/keyarea/sip2json-sub001/internal/metrics"
	"github.com/keyarea/sip2json-sub001/sip"
)

// maxDatagramSize is the largest UDP payload accepted.
const maxDatagramSize = 65535

// udpTransport sends replies back to the source of a datagram.
type udpTransport struct {
	conn net.PacketConn
	addr net.Addr
}

func (tp *udpTransport) Send(data string) error {
	_, err := tp.conn.WriteTo([]byte(data), tp.addr)
	return errtrace.Wrap(err)
}

func listen(ctx context.Context, cfg *config, out io.Writer, logger *slog.Logger) error {
	conn, err := net.ListenPacket("udp", cfg.listen)
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.Info("listening for SIP messages", "conn", conn)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	col := metrics.New(reg)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return errtrace.Wrap(serveUDP(gCtx, conn, newParser(col, logger), cfg.reply, out, logger))
	})
	if cfg.metricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("serving metrics", "addr", cfg.metricsAddr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return errtrace.Wrap(err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return errtrace.Wrap(srv.Shutdown(shutCtx))
		})
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return errtrace.Wrap(errorutil.JoinPrefix("listen:", err))
}

// serveUDP reads datagrams from conn until ctx is done.
// Every parsed message is written to out as a JSON line,
// requests other than ACK are answered with a stateless reply if code is non-zero.
// The connection is closed on return.
func serveUDP(ctx context.Context, conn net.PacketConn, p *sip.Parser, code int, out io.Writer, logger *slog.Logger) error {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer func() {
		stop()
		conn.Close()
	}()

	enc := json.NewEncoder(out)
	buf := make([]byte, maxDatagramSize)
	for {
		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errtrace.Wrap(err)
		}

		msg, err := p.Parse(string(buf[:n]))
		if err != nil {
			logger.Warn("dropping datagram", "from", addr, "error", err)
			continue
		}
		if err := enc.Encode(msg); err != nil {
			return errtrace.Wrap(err)
		}

		if code == 0 || !msg.IsRequest() || msg.Method == "ACK" {
			continue
		}
		msg.Transport = &udpTransport{conn: conn, addr: addr}
		if err := msg.ReplyStateless(code, ""); err != nil {
			logger.Warn("failed to reply", "from", addr, "message", msg, "error", err)
		}
	}
}
