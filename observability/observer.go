// Package observability provides event-based instrumentation for the
// kernel. Events carry a slog level and map one-to-one onto slog
// records when emitted through SlogObserver.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// EventType identifies the kind of event. The kernel defines its own
// constants using this type (e.g., "kernel.invoke.start").
type EventType string

// Event is an observability event emitted during kernel operations.
type Event struct {
	Type      EventType
	Level     slog.Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events from the kernel for logging or metrics.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
