// Package infrastructure provides cross-cutting runtime concerns: the global
// slog logger and trace-ID propagation through context.
package infrastructure
