package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"

	"braces.dev/errtrace"
)

// convert parses a single message read from cfg.in and writes its JSON summary to out.
func convert(cfg *config, stdin io.Reader, out io.Writer, logger *slog.Logger) error {
	r := stdin
	if cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return errtrace.Wrap(err)
	}
	data := string(b)
	if cfg.crlf {
		data = toCRLF(data)
	}

	msg, err := newParser(nil, logger).Parse(data)
	if err != nil {
		return errtrace.Wrap(err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return errtrace.Wrap(enc.Encode(msg))
}

// toCRLF replaces bare LF line endings with CRLF.
func toCRLF(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
}
