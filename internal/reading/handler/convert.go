package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/xid"
	"google.golang.org/protobuf/types/known/timestamppb"

	readingv1 "github.com/voicetyped/recite/gen/recite/reading/v1"
	"github.com/voicetyped/recite/pkg/attention"
	"github.com/voicetyped/recite/pkg/events"
	"github.com/voicetyped/recite/pkg/reading"
)

func sessionState(s *activeSession) *readingv1.SessionState {
	snap := s.matcher.Snapshot()
	st := &readingv1.SessionState{
		SessionId:      s.id,
		Status:         toStatus(snap.State),
		Permission:     toPermission(snap.Permission),
		Position:       int32(snap.Position),
		FailureStreak:  int32(snap.FailureStreak),
		Completed:      snap.Completed,
		TotalLines:     int32(snap.TotalLines),
		CompletedCount: int32(snap.CompletedCount),
	}
	if snap.Line != nil {
		st.Line = &readingv1.Line{
			Id:              snap.Line.ID,
			TextPrimary:     snap.Line.TextPrimary,
			TextSecondary:   snap.Line.TextSecondary,
			Confidence:      snap.Line.Confidence,
			ConfidenceLevel: toConfidenceLevel(snap.Line.Level),
			IsPending:       snap.Line.Pending,
		}
	}
	return st
}

func toStatus(s reading.State) readingv1.SessionStatus {
	if s == reading.StateListening {
		return readingv1.SessionStatus_SESSION_STATUS_LISTENING
	}
	return readingv1.SessionStatus_SESSION_STATUS_IDLE
}

func toPermission(p reading.Permission) readingv1.CapturePermission {
	switch p {
	case reading.PermissionGranted:
		return readingv1.CapturePermission_CAPTURE_PERMISSION_GRANTED
	case reading.PermissionDenied:
		return readingv1.CapturePermission_CAPTURE_PERMISSION_DENIED
	}
	return readingv1.CapturePermission_CAPTURE_PERMISSION_UNSPECIFIED
}

func toConfidenceLevel(l attention.Level) readingv1.ConfidenceLevel {
	switch l {
	case attention.LevelNone:
		return readingv1.ConfidenceLevel_CONFIDENCE_LEVEL_NONE
	case attention.LevelLow:
		return readingv1.ConfidenceLevel_CONFIDENCE_LEVEL_LOW
	case attention.LevelMedium:
		return readingv1.ConfidenceLevel_CONFIDENCE_LEVEL_MEDIUM
	case attention.LevelHigh:
		return readingv1.ConfidenceLevel_CONFIDENCE_LEVEL_HIGH
	}
	return readingv1.ConfidenceLevel_CONFIDENCE_LEVEL_UNSPECIFIED
}

// captureDenied maps the stream's capture field. An unset permission means
// the client owns a working microphone.
func captureDenied(p readingv1.CapturePermission) (bool, error) {
	switch p {
	case readingv1.CapturePermission_CAPTURE_PERMISSION_UNSPECIFIED,
		readingv1.CapturePermission_CAPTURE_PERMISSION_GRANTED:
		return false, nil
	case readingv1.CapturePermission_CAPTURE_PERMISSION_DENIED:
		return true, nil
	}
	return false, fmt.Errorf("unknown capture permission %d", int32(p))
}

func toFrame(f *readingv1.Frame) (reading.Frame, error) {
	return reading.FrameFromSlice(f.GetMfcc(), f.GetEnergy())
}

func toEvent(env events.Envelope) *readingv1.Event {
	return &readingv1.Event{
		Id:        env.ID,
		Type:      string(env.Type),
		Source:    env.Source,
		SessionId: env.SessionID,
		Timestamp: timestamppb.New(env.Timestamp),
		Data:      env.Data,
		Metadata:  env.Metadata,
	}
}

func snapshotEvent(sessionID string, data events.SessionStateData) (*readingv1.Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", events.SessionState, err)
	}
	return toEvent(events.Envelope{
		ID:        xid.New().String(),
		Type:      events.SessionState,
		Source:    "recite",
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}), nil
}
