package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// RuntimeHandler forwards records to the Wails runtime logger. It needs the
// context handed to OnStartup; any other context makes the runtime abort.
type RuntimeHandler struct {
	ctx    context.Context
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func NewRuntimeHandler(ctx context.Context, level slog.Level) *RuntimeHandler {
	return &RuntimeHandler{ctx: ctx, level: level}
}

func (h *RuntimeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *RuntimeHandler) Handle(_ context.Context, r slog.Record) error {
	msg := formatRecord(r, h.attrs, h.groups)
	switch {
	case r.Level >= slog.LevelError:
		runtime.LogError(h.ctx, msg)
	case r.Level >= slog.LevelWarn:
		runtime.LogWarning(h.ctx, msg)
	case r.Level >= slog.LevelInfo:
		runtime.LogInfo(h.ctx, msg)
	default:
		runtime.LogDebug(h.ctx, msg)
	}
	return nil
}

func (h *RuntimeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), qualify(attrs, h.groups)...)
	return &clone
}

func (h *RuntimeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func qualify(attrs []slog.Attr, groups []string) []slog.Attr {
	if len(groups) == 0 {
		return attrs
	}
	prefix := strings.Join(groups, ".") + "."
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}
	return out
}

// formatRecord renders "msg key=value ..." in logfmt-ish order.
func formatRecord(r slog.Record, attrs []slog.Attr, groups []string) string {
	var b strings.Builder
	b.WriteString(r.Message)
	write := func(a slog.Attr) {
		a = plainErrors(nil, slog.Attr{Key: a.Key, Value: a.Value.Resolve()})
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
	}
	for _, a := range attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		for _, q := range qualify([]slog.Attr{a}, groups) {
			write(q)
		}
		return true
	})
	return b.String()
}
