package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/voicetyped/recite/pkg/events"
)

type memStore struct {
	attempts []*Attempt
	err      error
}

func (s *memStore) Record(_ context.Context, a *Attempt) error {
	if s.err != nil {
		return s.err
	}
	s.attempts = append(s.attempts, a)
	return nil
}

func message(t *testing.T, et events.EventType, data any) []byte {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	b, err := json.Marshal(events.Envelope{
		ID:        "evt-1",
		Type:      et,
		Source:    "recite",
		SessionID: "sess-1",
		Timestamp: time.Now().UTC(),
		Data:      raw,
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return b
}

func TestRecorderAccepted(t *testing.T) {
	store := &memStore{}
	r := NewRecorder(store)

	msg := message(t, events.MatchAccepted, events.MatchData{
		PhraseID:   "l3",
		Index:      3,
		Expected:   3,
		Combined:   0.4,
		DTW:        0.4,
		Similarity: 0.9,
		Level:      "high",
		Reason:     "hard",
		DurationMs: 1200,
		Frames:     28,
	})
	if err := r.Handle(context.Background(), nil, msg); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(store.attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(store.attempts))
	}

	a := store.attempts[0]
	if !a.Accepted || a.SessionID != "sess-1" || a.EventID != "evt-1" {
		t.Errorf("attempt = %+v", a)
	}
	if a.PhraseID != "l3" || a.PhraseIndex != 3 || a.Level != "high" || a.Reason != "hard" {
		t.Errorf("attempt = %+v", a)
	}
	if a.DurationMs != 1200 || a.FrameCount != 28 {
		t.Errorf("duration = %d frames = %d", a.DurationMs, a.FrameCount)
	}
}

func TestRecorderRejected(t *testing.T) {
	store := &memStore{}
	r := NewRecorder(store)

	msg := message(t, events.MatchRejected, events.MatchData{
		PhraseID:      "l5",
		Index:         5,
		Expected:      2,
		Level:         "none",
		Reason:        "rejected",
		FailureStreak: 4,
	})
	if err := r.Handle(context.Background(), nil, msg); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(store.attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(store.attempts))
	}
	a := store.attempts[0]
	if a.Accepted || a.FailureStreak != 4 || a.ExpectedIndex != 2 {
		t.Errorf("attempt = %+v", a)
	}
}

func TestRecorderIgnoresOtherEvents(t *testing.T) {
	store := &memStore{}
	r := NewRecorder(store)

	for _, et := range []events.EventType{events.LineUpdated, events.PhraseEnded, events.SessionOpened} {
		if err := r.Handle(context.Background(), nil, message(t, et, map[string]any{})); err != nil {
			t.Errorf("%s: %v", et, err)
		}
	}
	if len(store.attempts) != 0 {
		t.Errorf("got %d attempts, want 0", len(store.attempts))
	}
}

func TestRecorderErrors(t *testing.T) {
	r := NewRecorder(&memStore{})
	if err := r.Handle(context.Background(), nil, []byte("{not json")); err == nil {
		t.Error("expected error for malformed envelope")
	}

	bad, _ := json.Marshal(events.Envelope{ID: "e", Type: events.MatchAccepted, Data: json.RawMessage(`"oops"`)})
	if err := r.Handle(context.Background(), nil, bad); err == nil {
		t.Error("expected error for malformed match data")
	}

	storeErr := errors.New("db down")
	r = NewRecorder(&memStore{err: storeErr})
	err := r.Handle(context.Background(), nil, message(t, events.MatchAccepted, events.MatchData{Level: "high"}))
	if !errors.Is(err, storeErr) {
		t.Errorf("got %v, want %v", err, storeErr)
	}
}
