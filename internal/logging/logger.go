// Package logging is the structured logger shared by the server, its
// middleware and the services. SlogLogger backs it with log/slog.
package logging

import "context"

// Logger takes a message plus alternating key/value attributes:
//
//	logger.Warn(ctx, "rate limit exceeded", "client", ip, "path", r.URL.Path)
//
// The context is forwarded to the handler so request-scoped values can be
// picked up there.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds attributes to every record of the returned logger.
	With(args ...any) Logger
}
