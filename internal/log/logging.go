// Package log provides helpers for creating a configured slog.Logger.
//
// Errors go to stderr and everything else to stdout, so a build integration
// driving pingen can redirect diagnostics without losing normal output. An
// optional log file receives a copy of every record.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace defines a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// routingHandler sends each record to every handler whose predicate passes.
type routingHandler struct {
	routes []route
}

type route struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func passAll(slog.Level) bool { return true }

func (r routingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, rt := range r.routes {
		if rt.pass(level) && rt.h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (r routingHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, rt := range r.routes {
		if rt.pass(rec.Level) && rt.h.Enabled(ctx, rec.Level) {
			_ = rt.h.Handle(ctx, rec)
		}
	}
	return nil
}

func (r routingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]route, len(r.routes))
	for i, rt := range r.routes {
		out[i] = route{pass: rt.pass, h: rt.h.WithAttrs(attrs)}
	}
	return routingHandler{routes: out}
}

func (r routingHandler) WithGroup(name string) slog.Handler {
	out := make([]route, len(r.routes))
	for i, rt := range r.routes {
		out[i] = route{pass: rt.pass, h: rt.h.WithGroup(name)}
	}
	return routingHandler{routes: out}
}

// SetupLogger builds a slog.Logger routing errors to stderr, the rest to
// stdout, and optionally teeing all records into logFile. The returned
// closers must be closed when the process is done logging.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	opts := &slog.HandlerOptions{Level: level}

	routes := []route{
		{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: slog.NewTextHandler(os.Stdout, opts)},
		{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: slog.NewTextHandler(os.Stderr, opts)},
	}

	var closeFiles []io.Closer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		routes = append(routes, route{pass: passAll, h: slog.NewTextHandler(f, opts)})
	}

	return slog.New(routingHandler{routes: routes}), closeFiles, nil
}
