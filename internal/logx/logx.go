package logx

import (
	"context"

	"pkt.systems/pslog"
)

type contextKey int

const (
	sessionKey contextKey = iota
	modelKey
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithSession annotates the logger with a session id when available.
func WithSession(log pslog.Logger, sessionID string) pslog.Logger {
	if sessionID != "" {
		log = log.With("session", sessionID)
	}
	return log
}

// WithModel annotates the logger with model name and digest when available.
func WithModel(log pslog.Logger, name, digest string) pslog.Logger {
	if name != "" {
		log = log.With("model", name)
	}
	if digest != "" {
		log = log.With("model_digest", digest)
	}
	return log
}

// SessionLogger returns the context logger annotated with sessionID unless the
// context already carries the same session marker.
func SessionLogger(ctx context.Context, sessionID string) pslog.Logger {
	log := pslog.Ctx(ctx)
	if current, ok := ctx.Value(sessionKey).(string); ok && current == sessionID {
		return log
	}
	return WithSession(log, sessionID)
}

// ContextWithSessionLogger attaches the logger and session marker to the context.
func ContextWithSessionLogger(ctx context.Context, log pslog.Logger, sessionID string) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	if sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, sessionID)
}

// ContextWithModel stores the model name on the context.
func ContextWithModel(ctx context.Context, name string) context.Context {
	if ctx == nil || name == "" {
		return ctx
	}
	return context.WithValue(ctx, modelKey, name)
}

// ModelFromContext returns the model name stored by ContextWithModel.
func ModelFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	name, _ := ctx.Value(modelKey).(string)
	return name
}

// ApplyLevel sets opts.MinLevel from a config level name: trace, debug, info
// or error. Unknown names keep info.
func ApplyLevel(opts pslog.Options, name string) pslog.Options {
	switch name {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		opts.MinLevel = pslog.InfoLevel
	}
	return opts
}
