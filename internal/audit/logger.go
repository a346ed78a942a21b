// internal/audit/logger.go
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry records one admin catalog mutation.
type Entry struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Kind       string    `json:"kind"`
	TargetID   int64     `json:"target_id"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Logger defines the interface for auditing catalog mutations
type Logger interface {
	// LogCatalogChange logs a create, edit or delete against a catalog
	LogCatalogChange(ctx context.Context, actor, action, kind string, targetID int64, title string)

	// Entries returns the recorded log, oldest first
	Entries() []Entry
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

func (l *NoOpLogger) LogCatalogChange(ctx context.Context, actor, action, kind string, targetID int64, title string) {
}

func (l *NoOpLogger) Entries() []Entry { return nil }

// MemoryLogger keeps the audit trail in memory and mirrors it to slog.
type MemoryLogger struct {
	mu      sync.Mutex
	logger  *slog.Logger
	entries []Entry
}

func NewMemoryLogger(logger *slog.Logger) *MemoryLogger {
	return &MemoryLogger{logger: logger}
}

func (l *MemoryLogger) LogCatalogChange(ctx context.Context, actor, action, kind string, targetID int64, title string) {
	entry := Entry{
		ID:         uuid.NewString(),
		Actor:      actor,
		Action:     action,
		Kind:       kind,
		TargetID:   targetID,
		Title:      title,
		OccurredAt: time.Now().UTC(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	l.logger.InfoContext(ctx, "catalog change",
		"actor", actor,
		"action", action,
		"kind", kind,
		"targetID", targetID,
		"title", title,
	)
}

func (l *MemoryLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
