// Package applog wraps log/slog with a text handler whose output format
// matches what the mpfloat CLI wants: a timestamp, level, message and
// attributes on one line, optionally duplicated to stderr when running
// verbose. Records below the configured level reach neither writer.
package applog

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler that formats records as a single line of
// "time level message attr attr..." text and writes them to out, with
// an independent verbose path to stderr.
type Handler struct {
	out     io.Writer
	stderr  io.Writer
	inner   slog.Handler
	mu      *sync.Mutex
	verbose bool
	attrs   []slog.Attr
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &Handler{out: h.out, stderr: h.stderr, inner: h.inner.WithAttrs(attrs), mu: h.mu, verbose: h.verbose, attrs: merged}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, stderr: h.stderr, inner: h.inner.WithGroup(name), mu: h.mu, verbose: h.verbose, attrs: h.attrs}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	fields := []string{r.Time.Format("2006-01-02 15:04:05"), r.Level.String() + ":", r.Message}
	for _, a := range h.attrs {
		fields = append(fields, a.Key+"="+a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, a.Key+"="+a.Value.String())
		return true
	})
	line := []byte(strings.Join(fields, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(line)
	}
	if h.verbose && h.stderr != nil {
		_, err = h.stderr.Write(line)
	}
	return err
}

// SetVerbose toggles whether records are also echoed to stderr.
func (h *Handler) SetVerbose(v bool) {
	h.verbose = v
}

// New builds a Handler writing to out, with level and record filtering
// taken from opts, and an independent stderr echo path for verbose mode.
func New(out, stderr io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		out:    out,
		stderr: stderr,
		inner:  slog.NewTextHandler(out, opts),
		mu:     &sync.Mutex{},
	}
}
