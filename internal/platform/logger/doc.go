// Package logger configures the application's structured slog logging
// and carries request-scoped loggers through context.
package logger
