package events

import (
	"encoding/json"
	"time"
)

// EventType identifies the kind of event flowing through the system.
type EventType string

const (
	SessionOpened     EventType = "session.opened"
	SessionClosed     EventType = "session.closed"
	SessionState      EventType = "session.state"
	CapturePermission EventType = "capture.permission"
	PhraseStarted     EventType = "phrase.started"
	PhraseEnded       EventType = "phrase.ended"
	PhraseDiscarded   EventType = "phrase.discarded"
	MatchAccepted     EventType = "match.accepted"
	MatchRejected     EventType = "match.rejected"
	LineUpdated       EventType = "line.updated"
	PositionChanged   EventType = "position.changed"
	ProgressChanged   EventType = "progress.changed"
	CorpusReloaded    EventType = "corpus.reloaded"
	SystemError       EventType = "error"
)

// Envelope is the standard event wrapper published to the event bus.
type Envelope struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Source    string            `json:"source"`
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Data      json.RawMessage   `json:"data"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// SessionOpenedData is the payload for session.opened events.
type SessionOpenedData struct {
	CorpusPath string `json:"corpus_path,omitempty"`
	TotalLines int    `json:"total_lines"`
}

// SessionClosedData is the payload for session.closed events.
type SessionClosedData struct {
	Reason         string `json:"reason"` // "closed" or "expired"
	CompletedCount int    `json:"completed_count"`
}

// SessionStateData is the payload for session.state events.
type SessionStateData struct {
	State    string `json:"state"` // "idle" or "listening"
	Position int    `json:"position"`
}

// CapturePermissionData is the payload for capture.permission events.
type CapturePermissionData struct {
	Permission string `json:"permission"` // "unknown", "granted" or "denied"
	Error      string `json:"error,omitempty"`
}

// PhraseStartedData is the payload for phrase.started events.
type PhraseStartedData struct {
	Threshold  float64 `json:"threshold"`
	NoiseFloor float64 `json:"noise_floor"`
}

// PhraseEndedData is the payload for phrase.ended events.
type PhraseEndedData struct {
	DurationMs int64   `json:"duration_ms"`
	Frames     int     `json:"frames"`
	MeanEnergy float64 `json:"mean_energy"`
}

// PhraseDiscardedData is the payload for phrase.discarded events.
type PhraseDiscardedData struct {
	Frames    int `json:"frames"`
	MinFrames int `json:"min_frames"`
}

// CandidateScore is one ranked candidate of a match attempt.
type CandidateScore struct {
	Index    int     `json:"index"`
	PhraseID string  `json:"phrase_id"`
	DTW      float64 `json:"dtw"`
	Penalty  float64 `json:"penalty"`
	Combined float64 `json:"combined"`
}

// MatchData is the payload for match.accepted and match.rejected events.
// For a rejected phrase PhraseID and Index describe the best candidate, if any.
type MatchData struct {
	PhraseID       string           `json:"phrase_id,omitempty"`
	Index          int              `json:"index"`
	Expected       int              `json:"expected"`
	Combined       float64          `json:"combined"`
	DTW            float64          `json:"dtw"`
	Penalty        float64          `json:"penalty"`
	Similarity     float64          `json:"similarity"`
	RelativeMargin float64          `json:"relative_margin"`
	Level          string           `json:"level"`
	Reason         string           `json:"reason"`
	FailureStreak  int              `json:"failure_streak"`
	DurationMs     int64            `json:"duration_ms"`
	Frames         int              `json:"frames"`
	CompletedCount int              `json:"completed_count"`
	Candidates     []CandidateScore `json:"candidates,omitempty"`
}

// LineData is the displayed line.
type LineData struct {
	ID              string  `json:"id"`
	TextPrimary     string  `json:"text_primary"`
	TextSecondary   string  `json:"text_secondary"`
	Confidence      float64 `json:"confidence"`
	ConfidenceLevel string  `json:"confidence_level"`
	IsPending       bool    `json:"is_pending"`
}

// LineUpdatedData is the payload for line.updated events. A nil Line means
// nothing is displayed.
type LineUpdatedData struct {
	Line           *LineData `json:"line"`
	CompletedCount int       `json:"completed_count"`
}

// ProgressChangedData is the payload for progress.changed events. Completed
// lists every completed line id in completion order; Added is empty when the
// set was cleared.
type ProgressChangedData struct {
	Added          string   `json:"added,omitempty"`
	Completed      []string `json:"completed"`
	CompletedCount int      `json:"completed_count"`
}

// PositionChangedData is the payload for position.changed events.
type PositionChangedData struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Cause string `json:"cause"` // "match", "terminal", "navigation" or "reset"
}

// CorpusReloadedData is the payload for corpus.reloaded events.
type CorpusReloadedData struct {
	Path       string `json:"path"`
	TotalLines int    `json:"total_lines"`
}

// SystemErrorData is the payload for error events.
type SystemErrorData struct {
	Error string `json:"error"`
}
