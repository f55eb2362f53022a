// Package diagnostics implements the [slog.Handler] that renders diagnostic
// records in the tool's line grammar on the diagnostic stream:
//
//	fist: <message>[ '<path>'][: <error detail> (<error code>)]
//
// Warn-level records are recoverable conditions (an entry or subtree was
// skipped); error-level records precede a fatal exit, which is decided by the
// caller, never in here. Attributes other than "path" and "err" are not
// rendered; the verbose handler shows them all instead.
package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"syscall"
)

const (
	prefix = "fist"

	// detailMax bounds the rendered error detail of system errors.
	detailMax = 100
)

// Handler is the principal implementation structure of the package.
type Handler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

// NewHandler returns a pointer to a new [Handler] writing to out, dropping
// records below level.
func NewHandler(out io.Writer, level slog.Level) *Handler {
	return &Handler{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

// Enabled reports whether a record at the given level is emitted.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders one record into the line grammar and writes it out.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var path string
	var detail error

	collect := func(attr slog.Attr) bool {
		switch attr.Key {
		case "path":
			path = attr.Value.String()
		case "err":
			if err, ok := attr.Value.Any().(error); ok {
				detail = err
			} else {
				detail = errors.New(attr.Value.String())
			}
		}

		return true
	}

	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	var b strings.Builder

	b.WriteString(prefix)
	b.WriteString(": ")
	b.WriteString(r.Message)

	if path != "" {
		fmt.Fprintf(&b, " '%s'", path)
	}

	if detail != nil {
		var errno syscall.Errno
		if errors.As(detail, &errno) {
			fmt.Fprintf(&b, ": %.*s (%d)", detailMax, errno.Error(), int(errno))
		} else {
			fmt.Fprintf(&b, ": %s", detail)
		}
	}

	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := io.WriteString(h.out, b.String()); err != nil {
		return fmt.Errorf("(diag) failed to write: %w", err)
	}

	return nil
}

// WithAttrs returns a new [Handler] carrying the additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &Handler{
		mu:    h.mu,
		out:   h.out,
		level: h.level,
		attrs: make([]slog.Attr, 0, len(h.attrs)+len(attrs)),
	}

	newH.attrs = append(newH.attrs, h.attrs...)
	newH.attrs = append(newH.attrs, attrs...)

	return newH
}

// WithGroup returns the [Handler] unchanged; the line grammar is flat and
// has no place for groups.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}
