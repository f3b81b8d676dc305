// Package logging wraps log/slog with the one text handler
// cmd/fragsolve needs: no example repo in this module's lineage wires a
// third-party structured-logging library (go-logr/logr shows up only as
// an indirect otel dependency elsewhere in the corpus, never imported
// for application logging), so this ambient concern is carried on the
// standard library instead.
package logging

import (
	"log/slog"
	"os"
)

// New returns a text-handler slog.Logger writing to w at the given
// level, with a "component" attribute set on every record it emits.
func New(w *os.File, component string, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("component", component))
}
