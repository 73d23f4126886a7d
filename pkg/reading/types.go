// Package reading tracks a reader's position in a corpus as they recite it,
// turning a stream of feature frames into display updates.
package reading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voicetyped/recite/internal/speech/engine"
	"github.com/voicetyped/recite/pkg/attention"
	"github.com/voicetyped/recite/pkg/corpus"
	"github.com/voicetyped/recite/pkg/events"
)

var (
	// ErrCaptureDenied is returned by Start when capture permission is refused.
	ErrCaptureDenied = errors.New("capture permission denied")
	// ErrCaptureUnavailable is returned by Start when no capture source can be opened.
	ErrCaptureUnavailable = errors.New("capture unavailable")
)

// Frame is one feature frame from the capture pipeline.
type Frame = engine.Input

// FrameFromSlice builds a frame from raw coefficients as they arrive on the
// wire. An empty slice yields a frame without features; 13 values drop
// coefficient 0; any other length than 12 or 13 is an error.
func FrameFromSlice(mfcc []float64, energy float64) (Frame, error) {
	f := Frame{Energy: energy}
	if len(mfcc) == 0 {
		return f, nil
	}
	v, ok := corpus.VectorFromSlice(mfcc)
	if !ok {
		return f, fmt.Errorf("mfcc has %d coefficients, want %d or %d",
			len(mfcc), corpus.Coefficients, corpus.Coefficients+1)
	}
	f.MFCC = &v
	return f, nil
}

// State is the listening state of a matcher.
type State int

const (
	StateIdle State = iota
	StateListening
)

func (s State) String() string {
	if s == StateListening {
		return "listening"
	}
	return "idle"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Permission is the capture permission as last reported by Start.
type Permission int

const (
	PermissionUnknown Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Permission) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Line is the currently displayed line.
type Line struct {
	ID            string          `json:"id"`
	TextPrimary   string          `json:"text_primary"`
	TextSecondary string          `json:"text_secondary"`
	Confidence    float64         `json:"confidence"`
	Level         attention.Level `json:"confidence_level"`
	Pending       bool            `json:"is_pending"`
}

func (l *Line) clone() *Line {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

func (l *Line) data() *events.LineData {
	if l == nil {
		return nil
	}
	return &events.LineData{
		ID:              l.ID,
		TextPrimary:     l.TextPrimary,
		TextSecondary:   l.TextSecondary,
		Confidence:      l.Confidence,
		ConfidenceLevel: l.Level.String(),
		IsPending:       l.Pending,
	}
}

func sameLine(a, b *Line) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Snapshot is a read-only view of a matcher.
type Snapshot struct {
	State          State      `json:"state"`
	Permission     Permission `json:"permission"`
	Position       int        `json:"position"`
	FailureStreak  int        `json:"failure_streak"`
	Line           *Line      `json:"line"`
	Completed      []string   `json:"completed"`
	TotalLines     int        `json:"total_lines"`
	CompletedCount int        `json:"completed_count"`
}

// Capture is the audio capture collaborator. Open is called by Start and
// reports whether permission was granted; Close is called by Stop.
type Capture interface {
	Open(ctx context.Context) error
	Close() error
}

// StaticCapture is a capture whose Open always returns Err. Frames are pushed
// to the matcher by the caller.
type StaticCapture struct {
	Err error
}

func (c StaticCapture) Open(context.Context) error { return c.Err }
func (c StaticCapture) Close() error               { return nil }

// Listener receives matcher events. It is called with the matcher's lock held
// and must not block or call back into the matcher.
type Listener interface {
	OnEvent(ctx context.Context, eventType events.EventType, data any)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, eventType events.EventType, data any)

func (f ListenerFunc) OnEvent(ctx context.Context, eventType events.EventType, data any) {
	f(ctx, eventType, data)
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Options configures a Matcher.
type Options struct {
	VAD     engine.VADConfig
	Scoring attention.Params

	MinPhraseFrames     int
	PreviewDelay        time.Duration
	PreviewConfidence   float64
	TerminalMinDuration time.Duration
	TerminalEnergyRatio float64
	MaxFailureStreak    int

	// SessionID tags log lines.
	SessionID string

	// Clock defaults to time.Now, Scheduler to time.AfterFunc.
	Clock     func() time.Time
	Scheduler Scheduler
	Listener  Listener
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		VAD:                 engine.DefaultVADConfig(),
		Scoring:             attention.DefaultParams(),
		MinPhraseFrames:     15,
		PreviewDelay:        120 * time.Millisecond,
		PreviewConfidence:   0.8,
		TerminalMinDuration: 350 * time.Millisecond,
		TerminalEnergyRatio: 1.25,
		MaxFailureStreak:    20,
	}
}

func (o Options) validate() error {
	if o.MinPhraseFrames < 1 {
		return fmt.Errorf("min phrase frames must be positive, got %d", o.MinPhraseFrames)
	}
	if o.VAD.StartFrames < 1 || o.VAD.EndFrames < 1 {
		return fmt.Errorf("vad debounce must be positive, got start=%d end=%d", o.VAD.StartFrames, o.VAD.EndFrames)
	}
	if o.Scoring.BandRatio <= 0 {
		return fmt.Errorf("band ratio must be positive, got %g", o.Scoring.BandRatio)
	}
	return nil
}
