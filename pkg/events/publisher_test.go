package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

// gatedQueue blocks every Publish until release is closed.
type gatedQueue struct {
	release chan struct{}

	mu        sync.Mutex
	published []Envelope
}

func (q *gatedQueue) Publish(ctx context.Context, _ string, payload any, _ ...map[string]string) error {
	select {
	case <-q.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.published = append(q.published, payload.(Envelope))
	return nil
}

func (q *gatedQueue) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.published)
}

func TestEnvelopeSerialization(t *testing.T) {
	data := &LineUpdatedData{
		Line: &LineData{
			ID:              "1a",
			TextPrimary:     "מִי הֶאֱמִין",
			TextSecondary:   "Who has believed our report?",
			Confidence:      0.8,
			ConfidenceLevel: "none",
			IsPending:       true,
		},
		CompletedCount: 2,
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}

	env := Envelope{
		ID:        "test-id",
		Type:      LineUpdated,
		Source:    "recite",
		SessionID: "session-123",
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}

	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	var decoded Envelope
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	if decoded.Type != LineUpdated {
		t.Errorf("type = %q, want %q", decoded.Type, LineUpdated)
	}
	if decoded.SessionID != "session-123" {
		t.Errorf("session_id = %q, want %q", decoded.SessionID, "session-123")
	}

	var payload LineUpdatedData
	if err := json.Unmarshal(decoded.Data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Line == nil || payload.Line.ID != "1a" || !payload.Line.IsPending {
		t.Errorf("line = %+v", payload.Line)
	}
}

func TestClearedLineSerializesAsNull(t *testing.T) {
	raw, err := json.Marshal(LineUpdatedData{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"line":null,"completed_count":0}` {
		t.Errorf("json = %s", raw)
	}
}

func TestEventTypeConstants(t *testing.T) {
	types := []EventType{
		SessionOpened, SessionClosed, SessionState,
		CapturePermission,
		PhraseStarted, PhraseEnded, PhraseDiscarded,
		MatchAccepted, MatchRejected,
		LineUpdated, PositionChanged, ProgressChanged,
		CorpusReloaded, SystemError,
	}

	seen := make(map[EventType]bool)
	for _, et := range types {
		if et == "" {
			t.Error("empty event type constant")
		}
		if seen[et] {
			t.Errorf("duplicate event type: %q", et)
		}
		seen[et] = true
	}
}

func TestPublisherLocalFanOut(t *testing.T) {
	p := NewPublisher(nil, "recite", "events")
	ch := p.Subscribe("watcher", 4)
	defer p.Unsubscribe("watcher")

	p.ForSession("s1").OnEvent(t.Context(), PositionChanged, PositionChangedData{From: -1, To: 0, Cause: "navigation"})

	select {
	case env := <-ch:
		if env.Type != PositionChanged || env.SessionID != "s1" || env.Source != "recite" {
			t.Errorf("envelope = %+v", env)
		}
		if env.ID == "" {
			t.Error("envelope id not set")
		}
		var data PositionChangedData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if data.To != 0 || data.Cause != "navigation" {
			t.Errorf("data = %+v", data)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestPublisherDropsWhenSubscriberFull(t *testing.T) {
	p := NewPublisher(nil, "recite", "events")
	ch := p.Subscribe("slow", 1)
	defer p.Unsubscribe("slow")

	for i := 0; i < 3; i++ {
		if err := p.Emit(t.Context(), SessionState, "s1", SessionStateData{State: "idle"}); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	if len(ch) != 1 {
		t.Errorf("buffered = %d, want 1", len(ch))
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	p := NewPublisher(nil, "recite", "events")
	ch := p.Subscribe("w", 0)
	p.Unsubscribe("w")
	if _, ok := <-ch; ok {
		t.Error("channel not closed")
	}
	// Unsubscribing twice is harmless.
	p.Unsubscribe("w")
}

func TestEmitDoesNotWaitOnQueue(t *testing.T) {
	q := &gatedQueue{release: make(chan struct{})}
	p := NewPublisher(q, "recite", "events")

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	go p.Run(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			_ = p.Emit(ctx, PositionChanged, "s1", PositionChangedData{From: i - 1, To: i})
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a stalled queue")
	}

	close(q.release)
	deadline := time.Now().Add(2 * time.Second)
	for q.count() < 5 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if q.count() != 5 {
		t.Fatalf("published = %d, want 5", q.count())
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, env := range q.published {
		var data PositionChangedData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if data.To != i {
			t.Errorf("published[%d].To = %d, want emit order", i, data.To)
		}
	}
}

func TestEmitReportsFullOutbox(t *testing.T) {
	q := &gatedQueue{release: make(chan struct{})}
	p := NewPublisher(q, "recite", "events")
	ch := p.Subscribe("w", 1)
	defer p.Unsubscribe("w")

	for i := 0; i < defaultOutboxSize; i++ {
		if err := p.Emit(t.Context(), SessionState, "s1", SessionStateData{State: "idle"}); err != nil {
			t.Fatalf("Emit %d: %v", i, err)
		}
	}
	err := p.Emit(t.Context(), SessionState, "s1", SessionStateData{State: "idle"})
	if !errors.Is(err, ErrOutboxFull) {
		t.Fatalf("err = %v, want ErrOutboxFull", err)
	}
	if len(ch) != 1 {
		t.Error("local subscriber missed events while the outbox was full")
	}
}

func TestRunWithoutQueueReturns(t *testing.T) {
	p := NewPublisher(nil, "recite", "events")
	done := make(chan struct{})
	go func() {
		p.Run(t.Context())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run without a queue did not return")
	}
}
