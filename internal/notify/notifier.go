// internal/notify/notifier.go

// Package notify is the fire-and-forget hook invoked when an employee marks a
// training module complete. Delivery is best-effort; failures are logged and
// never surfaced to the user action that triggered them.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// CompletionEvent describes one completion-marking.
type CompletionEvent struct {
	EmployeeEmail string    `json:"employee"`
	ModuleTitle   string    `json:"training"`
	OccurredAt    time.Time `json:"time"`
}

type Notifier interface {
	CompletionRecorded(ctx context.Context, event CompletionEvent) error
}

// Log records completion events as structured log entries. This mirrors the
// original hub, which only ever logged the simulated HR email.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (n *Log) CompletionRecorded(ctx context.Context, event CompletionEvent) error {
	n.logger.InfoContext(ctx, "HR notification",
		"employee", event.EmployeeEmail,
		"training", event.ModuleTitle,
		"time", event.OccurredAt.Format(time.RFC3339),
	)
	return nil
}
