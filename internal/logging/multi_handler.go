package logging

import (
	"context"
	"log/slog"
)

// MultiHandler duplicates records across several slog.Handlers. The default
// logger pairs the stdout JSON handler with the database sink, so errors
// reach both the console and the system_logs table.
type MultiHandler struct {
	targets []slog.Handler
}

func NewMultiHandler(targets ...slog.Handler) *MultiHandler {
	return &MultiHandler{targets: targets}
}

// Enabled reports true when any target would accept the level.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range m.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle forwards the record to every target that accepts its level. The
// first target error aborts the fan-out.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, t := range m.targets {
		if !t.Enabled(ctx, record.Level) {
			continue
		}
		if err := t.Handle(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, t := range m.targets {
		targets[i] = t.WithAttrs(attrs)
	}
	return &MultiHandler{targets: targets}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, t := range m.targets {
		targets[i] = t.WithGroup(name)
	}
	return &MultiHandler{targets: targets}
}
