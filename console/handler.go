// Package console routes log/slog records to the browser developer console.
//
// The handler itself has no build tags so it can be tested natively; only the
// sink that calls into syscall/js is wasm specific.
package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler that formats each record as one line and hands it
// to a sink together with the console method matching the record level.
type Handler struct {
	mu     *sync.Mutex
	sink   func(method, line string)
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// Compile-time assertion that Handler satisfies slog.Handler.
var _ slog.Handler = (*Handler)(nil)

func newHandler(sink func(method, line string), opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &Handler{mu: &sync.Mutex{}, sink: sink, level: level}
}

// New returns a logger writing through NewHandler at the given level.
func New(level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(&slog.HandlerOptions{Level: level}))
}

// Enabled reports whether records at level are written.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats the record and forwards it to the sink.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		writeAttr(&b, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sink(Method(r.Level), b.String())
	return nil
}

// WithAttrs returns a handler that prepends attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	prefix := strings.Join(h.groups, ".")
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup returns a handler that qualifies subsequent attribute keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

// Method maps a slog level onto the console method that displays it.
func Method(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warn"
	case level >= slog.LevelInfo:
		return "log"
	default:
		return "debug"
	}
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Key
		if prefix != "" && group != "" {
			group = prefix + "." + group
		} else if group == "" {
			group = prefix
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, group, ga)
		}
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}
