package reading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/voicetyped/recite/internal/speech/engine"
	"github.com/voicetyped/recite/pkg/attention"
	"github.com/voicetyped/recite/pkg/corpus"
	"github.com/voicetyped/recite/pkg/events"
)

// Matcher follows one reader through a corpus. All methods are safe for
// concurrent use, but frames must be ingested from a single source so that
// frame order is transition order.
type Matcher struct {
	mu sync.Mutex

	corpus    *corpus.Corpus
	scorer    *attention.Scorer
	vad       *engine.VAD
	buf       engine.PhraseBuffer
	capture   Capture
	opts      Options
	clock     func() time.Time
	scheduler Scheduler
	listener  Listener

	state      State
	permission Permission
	position   int
	streak     int
	confirmed  *Line
	displayed  *Line
	completed  map[string]struct{}
	order      []string

	preview    Timer
	previewGen uint64
}

// NewMatcher creates a matcher over c. A nil corpus is treated as empty.
func NewMatcher(c *corpus.Corpus, capture Capture, opts Options) (*Matcher, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if c == nil {
		c = corpus.Empty()
	}

	m := &Matcher{
		corpus:    c,
		scorer:    attention.NewScorer(c, opts.Scoring),
		vad:       engine.NewVAD(opts.VAD),
		capture:   capture,
		opts:      opts,
		clock:     opts.Clock,
		scheduler: opts.Scheduler,
		listener:  opts.Listener,
		position:  -1,
		completed: make(map[string]struct{}),
	}
	if m.clock == nil {
		m.clock = time.Now
	}
	if m.scheduler == nil {
		m.scheduler = wallScheduler{}
	}
	return m, nil
}

// Corpus returns the corpus the matcher was created with.
func (m *Matcher) Corpus() *corpus.Corpus { return m.corpus }

// Start opens capture and begins listening. The position is kept so a paused
// session resumes where it left off.
func (m *Matcher) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateListening {
		return nil
	}

	var err error
	if m.capture == nil {
		err = ErrCaptureUnavailable
	} else if err = m.capture.Open(ctx); err != nil && !errors.Is(err, ErrCaptureDenied) && !errors.Is(err, ErrCaptureUnavailable) {
		err = fmt.Errorf("%w: %v", ErrCaptureUnavailable, err)
	}
	if err != nil {
		m.setPermission(ctx, PermissionDenied, err)
		slog.WarnContext(ctx, "capture not available",
			slog.String("session_id", m.opts.SessionID), slog.String("error", err.Error()))
		return err
	}
	m.setPermission(ctx, PermissionGranted, nil)

	m.buf.Reset()
	m.vad.Begin(m.clock())
	m.setState(ctx, StateListening)

	slog.InfoContext(ctx, "listening",
		slog.String("session_id", m.opts.SessionID),
		slog.Int("position", m.position),
		slog.Int("expected", m.position+1))
	return nil
}

// Stop stops listening. In-flight phrase data is discarded; the position and
// completed lines are kept. Stopping an idle matcher is a no-op.
func (m *Matcher) Stop(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(ctx)
}

func (m *Matcher) stopLocked(ctx context.Context) {
	m.cancelPreview()
	m.buf.Reset()
	m.vad.Reset()

	if m.state != StateListening {
		return
	}
	if err := m.capture.Close(); err != nil {
		slog.WarnContext(ctx, "capture close failed",
			slog.String("session_id", m.opts.SessionID), slog.String("error", err.Error()))
	}
	m.setState(ctx, StateIdle)
}

// Reset stops listening and returns to the start of the corpus with nothing
// displayed or completed.
func (m *Matcher) Reset(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked(ctx)
	if len(m.completed) > 0 {
		clear(m.completed)
		m.order = m.order[:0]
		m.emitProgress(ctx, "")
	}
	m.confirmed = nil
	m.setDisplay(ctx, nil)
	m.streak = 0
	m.setPosition(ctx, -1, "reset")

	slog.InfoContext(ctx, "reset to start", slog.String("session_id", m.opts.SessionID))
}

// GoToIndex shows line i, clamped into the corpus, as confirmed. No alignment
// is performed.
func (m *Matcher) GoToIndex(ctx context.Context, i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goToLocked(ctx, i)
}

func (m *Matcher) goToLocked(ctx context.Context, i int) {
	n := m.corpus.Len()
	if n == 0 {
		return
	}
	i = max(0, min(n-1, i))
	p, _ := m.corpus.Phrase(i)

	m.cancelPreview()
	m.streak = 0
	m.confirmed = &Line{
		ID:            p.ID,
		TextPrimary:   p.TextPrimary,
		TextSecondary: p.TextSecondary,
		Confidence:    1,
		Level:         attention.LevelHigh,
	}
	m.setDisplay(ctx, m.confirmed)
	m.setPosition(ctx, i, "navigation")
}

// GoPrev moves back one line. It does nothing at or before the first line.
func (m *Matcher) GoPrev(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.position <= 0 {
		return
	}
	m.goToLocked(ctx, m.position-1)
}

// GoNext moves forward one line. It does nothing past the last line.
func (m *Matcher) GoNext(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.position + 1
	if m.position < 0 {
		next = 0
	}
	if next > m.corpus.Len()-1 {
		return
	}
	m.goToLocked(ctx, next)
}

// Title clears the display without touching the position or progress.
func (m *Matcher) Title(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelPreview()
	m.confirmed = nil
	m.setDisplay(ctx, nil)
}

// Ingest feeds one frame through the matcher. It reports whether the frame
// ended a phrase. Frames are ignored while idle.
func (m *Matcher) Ingest(ctx context.Context, f Frame) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateListening {
		return false
	}

	r := m.vad.Classify(f, m.clock())
	switch r.Event {
	case engine.VADPhraseStarted:
		m.buf.Reset()
		m.buf.Append(*f.MFCC, f.Energy)
		m.emit(ctx, events.PhraseStarted, events.PhraseStartedData{
			Threshold:  m.vad.Threshold(),
			NoiseFloor: m.vad.NoiseFloor(),
		})
		slog.DebugContext(ctx, "phrase started",
			slog.String("session_id", m.opts.SessionID),
			slog.Float64("threshold", m.vad.Threshold()),
			slog.Float64("noise_floor", m.vad.NoiseFloor()))
		m.schedulePreview(ctx)

	case engine.VADAppended:
		if r.Append && f.MFCC != nil {
			m.buf.Append(*f.MFCC, f.Energy)
		}

	case engine.VADPhraseEnded:
		m.cancelPreview()
		m.emit(ctx, events.PhraseEnded, events.PhraseEndedData{
			DurationMs: r.Duration.Milliseconds(),
			Frames:     m.buf.Len(),
			MeanEnergy: m.buf.MeanEnergy(),
		})
		m.endPhrase(ctx, r.Duration)
		m.buf.Reset()
		return true
	}
	return false
}

func (m *Matcher) endPhrase(ctx context.Context, d time.Duration) {
	frames := m.buf.Len()
	if frames < m.opts.MinPhraseFrames {
		slog.DebugContext(ctx, "phrase too short, discarded",
			slog.String("session_id", m.opts.SessionID),
			slog.Int("frames", frames), slog.Int("min_frames", m.opts.MinPhraseFrames))
		m.emit(ctx, events.PhraseDiscarded, events.PhraseDiscardedData{
			Frames: frames, MinFrames: m.opts.MinPhraseFrames,
		})
		m.setDisplay(ctx, m.confirmed)
		return
	}

	if last := m.corpus.LastRealIndex(); last >= 0 && m.position == last && m.confidentFinal(d) {
		m.acceptTerminal(ctx, d, frames)
		return
	}

	match, dec := m.scorer.Score(m.buf.Frames(), d, m.position, m.streak)
	attrs := []any{
		slog.String("session_id", m.opts.SessionID),
		slog.Int("position", m.position),
		slog.Int("expected", dec.Expected),
		slog.Int("radius", dec.Radius),
		slog.Int("candidates", len(dec.Candidates)),
		slog.Float64("relative_margin", dec.RelativeMargin),
		slog.String("level", dec.Level.String()),
		slog.String("reason", string(dec.Reason)),
	}
	if best, ok := dec.Best(); ok {
		attrs = append(attrs, slog.String("best", best.ID), slog.Float64("combined", best.Combined))
	}
	slog.DebugContext(ctx, "phrase scored", attrs...)

	if match == nil {
		m.reject(ctx, dec, d, frames)
		return
	}
	m.accept(ctx, match, dec, d, frames)
}

func (m *Matcher) confidentFinal(d time.Duration) bool {
	if m.buf.Len() < m.opts.MinPhraseFrames || d < m.opts.TerminalMinDuration {
		return false
	}
	return m.buf.MeanEnergy() > m.vad.Threshold()*m.opts.TerminalEnergyRatio
}

func (m *Matcher) acceptTerminal(ctx context.Context, d time.Duration, frames int) {
	idx := m.corpus.TerminalIndex()
	p, _ := m.corpus.Phrase(idx)

	m.streak = 0
	m.complete(ctx, p.ID)
	m.confirmed = &Line{
		ID:            p.ID,
		TextPrimary:   p.TextPrimary,
		TextSecondary: p.TextSecondary,
		Confidence:    1,
		Level:         attention.LevelHigh,
	}
	m.setDisplay(ctx, m.confirmed)
	m.emit(ctx, events.MatchAccepted, events.MatchData{
		PhraseID:       p.ID,
		Index:          idx,
		Expected:       idx,
		Similarity:     1,
		RelativeMargin: 1,
		Level:          attention.LevelHigh.String(),
		Reason:         "terminal",
		DurationMs:     d.Milliseconds(),
		Frames:         frames,
		CompletedCount: len(m.completed),
	})
	m.setPosition(ctx, idx, "terminal")

	slog.InfoContext(ctx, "terminal line reached", slog.String("session_id", m.opts.SessionID))
}

func (m *Matcher) accept(ctx context.Context, match *attention.Match, dec attention.Decision, d time.Duration, frames int) {
	m.streak = 0
	m.complete(ctx, match.Phrase.ID)
	m.confirmed = &Line{
		ID:            match.Phrase.ID,
		TextPrimary:   match.Phrase.TextPrimary,
		TextSecondary: match.Phrase.TextSecondary,
		Confidence:    match.Similarity,
		Level:         match.Level,
	}

	switch {
	case m.displayed == nil || m.displayed.ID != match.Phrase.ID:
		m.setDisplay(ctx, m.confirmed)
	case m.displayed.Pending:
		// The preview guessed right: confirm it in place.
		m.setDisplay(ctx, m.confirmed)
	default:
		// Already showing this line: refresh confidence without re-rendering.
		m.displayed = m.confirmed.clone()
	}

	data := matchData(match.Index, match.Phrase.ID, match.Similarity, dec, m.streak, d, frames)
	data.CompletedCount = len(m.completed)
	m.emit(ctx, events.MatchAccepted, data)
	m.setPosition(ctx, match.Index, "match")

	slog.InfoContext(ctx, "line matched",
		slog.String("session_id", m.opts.SessionID),
		slog.String("phrase_id", match.Phrase.ID),
		slog.Int("index", match.Index),
		slog.String("level", match.Level.String()),
		slog.String("reason", string(dec.Reason)))
}

func (m *Matcher) reject(ctx context.Context, dec attention.Decision, d time.Duration, frames int) {
	m.streak = min(m.opts.MaxFailureStreak, m.streak+1)

	idx, id := -1, ""
	if best, ok := dec.Best(); ok {
		idx, id = best.Index, best.ID
	}
	data := matchData(idx, id, 0, dec, m.streak, d, frames)
	data.CompletedCount = len(m.completed)
	m.emit(ctx, events.MatchRejected, data)
	m.setDisplay(ctx, m.confirmed)
}

func matchData(idx int, id string, similarity float64, dec attention.Decision, streak int, d time.Duration, frames int) events.MatchData {
	data := events.MatchData{
		PhraseID:       id,
		Index:          idx,
		Expected:       dec.Expected,
		Similarity:     similarity,
		RelativeMargin: dec.RelativeMargin,
		Level:          dec.Level.String(),
		Reason:         string(dec.Reason),
		FailureStreak:  streak,
		DurationMs:     d.Milliseconds(),
		Frames:         frames,
	}
	if best, ok := dec.Best(); ok {
		data.Combined, data.DTW, data.Penalty = best.Combined, best.DTW, best.Penalty
	}
	for _, c := range dec.Candidates {
		data.Candidates = append(data.Candidates, events.CandidateScore{
			Index: c.Index, PhraseID: c.ID, DTW: c.DTW, Penalty: c.Penalty, Combined: c.Combined,
		})
	}
	return data
}

func (m *Matcher) complete(ctx context.Context, id string) {
	if _, ok := m.completed[id]; ok {
		return
	}
	m.completed[id] = struct{}{}
	m.order = append(m.order, id)
	m.emitProgress(ctx, id)
}

func (m *Matcher) emitProgress(ctx context.Context, added string) {
	m.emit(ctx, events.ProgressChanged, events.ProgressChangedData{
		Added:          added,
		Completed:      append([]string{}, m.order...),
		CompletedCount: len(m.completed),
	})
}

func (m *Matcher) setDisplay(ctx context.Context, l *Line) {
	if sameLine(m.displayed, l) {
		return
	}
	m.displayed = l.clone()
	m.emit(ctx, events.LineUpdated, events.LineUpdatedData{
		Line:           m.displayed.data(),
		CompletedCount: len(m.completed),
	})
}

func (m *Matcher) setPosition(ctx context.Context, to int, cause string) {
	if m.position == to {
		return
	}
	from := m.position
	m.position = to
	m.emit(ctx, events.PositionChanged, events.PositionChangedData{From: from, To: to, Cause: cause})
}

func (m *Matcher) setState(ctx context.Context, s State) {
	if m.state == s {
		return
	}
	m.state = s
	m.emit(ctx, events.SessionState, events.SessionStateData{State: s.String(), Position: m.position})
}

func (m *Matcher) setPermission(ctx context.Context, p Permission, err error) {
	if m.permission == p && err == nil {
		return
	}
	m.permission = p
	data := events.CapturePermissionData{Permission: p.String()}
	if err != nil {
		data.Error = err.Error()
	}
	m.emit(ctx, events.CapturePermission, data)
}

func (m *Matcher) emit(ctx context.Context, t events.EventType, data any) {
	if m.listener != nil {
		m.listener.OnEvent(ctx, t, data)
	}
}

// Snapshot returns the matcher's current state.
func (m *Matcher) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		State:          m.state,
		Permission:     m.permission,
		Position:       m.position,
		FailureStreak:  m.streak,
		Line:           m.displayed.clone(),
		Completed:      append([]string(nil), m.order...),
		TotalLines:     m.corpus.TotalLines(),
		CompletedCount: len(m.completed),
	}
}

// State returns the listening state.
func (m *Matcher) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Position returns the index of the last confirmed line, or -1.
func (m *Matcher) Position() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

// TotalLines returns the number of lines in the corpus.
func (m *Matcher) TotalLines() int { return m.corpus.TotalLines() }

// CompletedCount returns the number of distinct lines matched so far.
func (m *Matcher) CompletedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.completed)
}

// CurrentLine returns the displayed line, or nil.
func (m *Matcher) CurrentLine() *Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.displayed.clone()
}
