package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Handler is a log/slog handler that forwards records to a Sink.
// Attributes are appended to the message as " key=value" pairs, with group
// names joined by dots. Times and source locations are dropped.
type Handler struct {
	sink  Sink
	attrs string
	group string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a slog handler writing to s.
func NewHandler(s Sink) *Handler {
	return &Handler{sink: s}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return h.sink.Enabled(FromSlogLevel(lvl))
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	h.sink.Log(Record{Level: FromSlogLevel(r.Level), Message: b.String()})
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	return &Handler{sink: h.sink, attrs: b.String(), group: h.group}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{sink: h.sink, attrs: h.attrs, group: h.group + name + "."}
}

// appendAttr writes a as " key=value". Group values are flattened into
// dotted keys and empty attributes are skipped.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s%s=%v", group, a.Key, a.Value.Any())
}
