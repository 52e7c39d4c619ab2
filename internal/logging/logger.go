package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

const logFileName = "app.log"

// Logger owns the process log handlers: stdout, the work-dir log file and,
// once the desktop runtime is up, the runtime log.
type Logger struct {
	mu       sync.RWMutex
	handler  slog.Handler
	handlers []slog.Handler
	file     *os.File
	opts     *slog.HandlerOptions
}

// New builds a logger writing text records to stdout and to <workDir>/app.log
// and makes it the process default. When the log file cannot be opened the
// logger falls back to stdout only.
func New(workDir string, level slog.Level) *Logger {
	l := newLogger(os.Stdout, workDir, level)
	slog.SetDefault(l.Slog())
	return l
}

func newLogger(stdout io.Writer, workDir string, level slog.Level) *Logger {
	l := &Logger{opts: &slog.HandlerOptions{
		AddSource:   level <= slog.LevelDebug,
		Level:       level,
		ReplaceAttr: plainErrors,
	}}
	l.handlers = append(l.handlers, slog.NewTextHandler(stdout, l.opts))

	if workDir != "" {
		name := filepath.Join(workDir, logFileName)
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			slog.Default().Error("open log file failed, use stdout only", "reason", err, "path", name)
		} else {
			l.file = f
			l.handlers = append(l.handlers, slog.NewTextHandler(f, l.opts))
		}
	}

	l.rebuild()
	return l
}

func (l *Logger) rebuild() {
	l.handler = slogmulti.Fanout(l.handlers...)
}

func (l *Logger) current() slog.Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handler
}

// Slog returns a logger that always writes to the current set of sinks, so
// loggers handed out before EnableRuntime reach the runtime log too.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(&liveHandler{logger: l})
}

// EnableRuntime adds the runtime log as a further sink.
func (l *Logger) EnableRuntime(ctx context.Context) *slog.Logger {
	l.addHandler(NewRuntimeHandler(ctx, l.opts.Level.Level()))
	return l.Slog()
}

func (l *Logger) addHandler(h slog.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
	l.rebuild()
}

func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	_ = l.file.Close()
	l.file = nil
}

// ParseLevel maps a config string onto a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// plainErrors logs errors by message. Wrapped errors carry a stack trace
// that the text handler would otherwise print with %+v.
func plainErrors(_ []string, a slog.Attr) slog.Attr {
	if err, ok := a.Value.Any().(error); ok && a.Value.Kind() == slog.KindAny {
		return slog.String(a.Key, err.Error())
	}
	return a
}

// liveHandler resolves the Logger's handler on every record and replays
// the attrs and groups bound to it.
type liveHandler struct {
	logger *Logger
	bind   []func(slog.Handler) slog.Handler
}

func (h *liveHandler) resolve() slog.Handler {
	out := h.logger.current()
	for _, fn := range h.bind {
		out = fn(out)
	}
	return out
}

func (h *liveHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.logger.current().Enabled(ctx, level)
}

func (h *liveHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.resolve().Handle(ctx, r)
}

func (h *liveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h *liveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h *liveHandler) with(fn func(slog.Handler) slog.Handler) *liveHandler {
	bind := append(append([]func(slog.Handler) slog.Handler{}, h.bind...), fn)
	return &liveHandler{logger: h.logger, bind: bind}
}
