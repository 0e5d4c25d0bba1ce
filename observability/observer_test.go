package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestSlogObserver_EmitsEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewSlogObserver(logger)

	obs.OnEvent(context.Background(), Event{
		Type:      "kernel.invoke.start",
		Level:     slog.LevelInfo,
		Timestamp: time.Now(),
		Source:    "kernel.Invoke",
		Data:      map[string]any{"function": "ChatPlugin-chat"},
	})

	out := buf.String()
	if !strings.Contains(out, "kernel.invoke.start") {
		t.Errorf("log output missing event type: %q", out)
	}
	if !strings.Contains(out, "function=ChatPlugin-chat") {
		t.Errorf("log output missing data attribute: %q", out)
	}
	if !strings.Contains(out, "source=kernel.Invoke") {
		t.Errorf("log output missing source: %q", out)
	}
}

func TestSlogObserver_LevelMapping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewSlogObserver(logger)

	obs.OnEvent(context.Background(), Event{Type: "e", Level: slog.LevelWarn})

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level in output: %q", buf.String())
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingObserver) OnEvent(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestMultiObserver_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	multi := NewMultiObserver(a, nil, b)

	multi.OnEvent(context.Background(), Event{Type: "x"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("got %d and %d events, want 1 and 1", len(a.events), len(b.events))
	}
}

func TestNoOpObserver(t *testing.T) {
	// Must not panic with zero-value events.
	NoOpObserver{}.OnEvent(context.Background(), Event{})
}
