package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pitabwire/util"

	"github.com/voicetyped/recite/pkg/events"
)

// Store is where the recorder writes attempts. *Repository implements it.
type Store interface {
	Record(ctx context.Context, a *Attempt) error
}

// Recorder implements queue.SubscribeWorker, persisting every matching
// decision published on the event bus.
type Recorder struct {
	Store Store
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{Store: store}
}

// Handle is called by frame's pub/sub for each event message. Events other
// than match.accepted and match.rejected are ignored.
func (r *Recorder) Handle(ctx context.Context, _ map[string]string, message []byte) error {
	var env events.Envelope
	if err := json.Unmarshal(message, &env); err != nil {
		util.Log(ctx).WithError(err).Error("progress recorder: unmarshal envelope")
		return err
	}

	attempt, ok, err := attemptFromEnvelope(env)
	if err != nil {
		util.Log(ctx).WithError(err).Error("progress recorder: decode match")
		return err
	}
	if !ok {
		return nil
	}

	if err := r.Store.Record(ctx, attempt); err != nil {
		util.Log(ctx).WithError(err).Error("progress recorder: record attempt")
		return err
	}
	return nil
}

func attemptFromEnvelope(env events.Envelope) (*Attempt, bool, error) {
	var accepted bool
	switch env.Type {
	case events.MatchAccepted:
		accepted = true
	case events.MatchRejected:
	default:
		return nil, false, nil
	}

	var m events.MatchData
	if err := json.Unmarshal(env.Data, &m); err != nil {
		return nil, false, fmt.Errorf("event %s: %w", env.ID, err)
	}

	return &Attempt{
		SessionID:     env.SessionID,
		EventID:       env.ID,
		PhraseID:      m.PhraseID,
		PhraseIndex:   m.Index,
		ExpectedIndex: m.Expected,
		Combined:      m.Combined,
		DTW:           m.DTW,
		Similarity:    m.Similarity,
		Level:         m.Level,
		Accepted:      accepted,
		Reason:        m.Reason,
		FailureStreak: m.FailureStreak,
		DurationMs:    m.DurationMs,
		FrameCount:    m.Frames,
	}, true, nil
}
