// Command sip2json converts SIP messages to JSON.
//
// By default it reads a single message from a file or stdin and prints its JSON summary.
// With -listen it receives messages over UDP, prints a JSON line per datagram and
// optionally answers requests statelessly with the -reply status code.
//
// Usage:
//
//	sip2json [-in FILE] [-crlf] [-dev]
//	sip2json -listen ADDR [-reply CODE] [-metrics ADDR] [-dev]
package main

//go:generate go tool errtrace -w .

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"braces.dev/errtrace"

	"github.com/keyarea/sip2json-sub001/internal/log"
	"github.com/keyarea/sip2json-sub001/internal/metrics"
	"github.com/keyarea/sip2json-sub001/sip"
)

type config struct {
	in          string
	crlf        bool
	listen      string
	metricsAddr string
	reply       int
	dev         bool
	verbose     bool
}

func parseFlags(args []string) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("sip2json", flag.ContinueOnError)
	fs.StringVar(&cfg.in, "in", "-", "file to read a SIP message from, \"-\" reads stdin")
	fs.BoolVar(&cfg.crlf, "crlf", false, "convert bare LF line endings of the input to CRLF")
	fs.StringVar(&cfg.listen, "listen", "", "UDP address to receive SIP messages on, e.g. 127.0.0.1:5060")
	fs.StringVar(&cfg.metricsAddr, "metrics", "", "HTTP address to expose Prometheus metrics on")
	fs.IntVar(&cfg.reply, "reply", 0, "status code of stateless replies to received requests, 0 disables replies")
	fs.BoolVar(&cfg.dev, "dev", false, "use developer log output")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if cfg.reply != 0 && (cfg.reply < 100 || cfg.reply > 699) {
		return nil, errtrace.Wrap(sip.NewInvalidArgumentError("reply code %d is out of 100-699 range", cfg.reply))
	}
	if cfg.listen == "" && (cfg.reply != 0 || cfg.metricsAddr != "") {
		return nil, errtrace.Wrap(sip.NewInvalidArgumentError("-reply and -metrics require -listen"))
	}
	return &cfg, nil
}

func (cfg *config) logger() *slog.Logger {
	lvl := slog.LevelInfo
	if cfg.verbose {
		lvl = slog.LevelDebug
	}
	if cfg.dev {
		return log.NewDev(os.Stderr, lvl)
	}
	return log.New(os.Stderr, lvl)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, cfg.logger()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if cfg.listen == "" {
		return errtrace.Wrap(convert(cfg, stdin, stdout, logger))
	}
	return errtrace.Wrap(listen(ctx, cfg, stdout, logger))
}

func newParser(col *metrics.Collector, logger *slog.Logger) *sip.Parser {
	opts := &sip.ParserOptions{Logger: logger}
	if col != nil {
		opts.Observer = col
	}
	return sip.NewParser(opts)
}
