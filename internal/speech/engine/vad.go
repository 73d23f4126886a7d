package engine

import (
	"time"

	"github.com/voicetyped/recite/pkg/corpus"
)

// VADConfig holds voice activity detection parameters.
type VADConfig struct {
	MinEnergy         float64       // absolute energy floor for the dynamic threshold
	NoiseAlpha        float64       // EMA smoothing factor for the noise floor
	Multiplier        float64       // threshold = max(MinEnergy, noiseFloor * Multiplier)
	InitialNoiseFloor float64       // noise floor before any frame has been seen
	StartFrames       int           // consecutive speech-like frames to confirm a phrase start
	EndFrames         int           // consecutive non-speech frames to confirm a phrase end
	TrailingFrames    int           // non-speech frames still appended after speech stops
	Cooldown          time.Duration // starts suppressed after a phrase ends
	Warmup            time.Duration // starts suppressed after Begin
}

// DefaultVADConfig returns defaults tuned for ~43ms feature frames.
func DefaultVADConfig() VADConfig {
	return VADConfig{
		MinEnergy:         0.004,
		NoiseAlpha:        0.05,
		Multiplier:        3.2,
		InitialNoiseFloor: 0.002,
		StartFrames:       2,
		EndFrames:         12,
		TrailingFrames:    2,
		Cooldown:          200 * time.Millisecond,
		Warmup:            600 * time.Millisecond,
	}
}

// VADEvent indicates what a frame did to the phrase segmentation.
type VADEvent int

const (
	// VADIgnored means the frame is outside any phrase, or was dropped.
	VADIgnored VADEvent = iota
	// VADAppended means the frame belongs to the phrase in progress.
	VADAppended
	// VADPhraseStarted means this frame confirmed a phrase start. The phrase
	// buffer must be cleared before the frame is appended.
	VADPhraseStarted
	// VADPhraseEnded means the end debounce was reached.
	VADPhraseEnded
)

func (e VADEvent) String() string {
	switch e {
	case VADAppended:
		return "appended"
	case VADPhraseStarted:
		return "phrase_started"
	case VADPhraseEnded:
		return "phrase_ended"
	default:
		return "ignored"
	}
}

// Input is one feature frame as seen by the detector. A nil MFCC means the
// extractor produced no usable coefficients for the frame.
type Input struct {
	MFCC   *corpus.Vector
	Energy float64
}

// Result is the detector's verdict for one frame.
type Result struct {
	Event VADEvent
	// Append reports whether the frame should be added to the phrase buffer.
	Append bool
	// Duration is the time since the start transition; set on VADPhraseEnded.
	Duration time.Duration
}

// VAD performs adaptive-threshold voice activity detection on feature frames.
// It is not safe for concurrent use.
type VAD struct {
	config VADConfig

	noiseFloor  float64
	inPhrase    bool
	speechRun   int
	silenceRun  int
	phraseStart time.Time
	lastEnd     time.Time
	listenStart time.Time
}

// NewVAD creates a new voice activity detector.
func NewVAD(cfg VADConfig) *VAD {
	return &VAD{
		config:     cfg,
		noiseFloor: cfg.InitialNoiseFloor,
	}
}

// Config returns the detector's parameters.
func (v *VAD) Config() VADConfig { return v.config }

// Begin clears the phrase state and starts the warm-up interval at now.
func (v *VAD) Begin(now time.Time) {
	v.Reset()
	v.listenStart = now
}

// Reset clears debounce and phrase flags. The learned noise floor is kept.
func (v *VAD) Reset() {
	v.inPhrase = false
	v.speechRun = 0
	v.silenceRun = 0
	v.phraseStart = time.Time{}
}

// InPhrase reports whether a phrase is in progress.
func (v *VAD) InPhrase() bool { return v.inPhrase }

// NoiseFloor returns the current noise floor estimate.
func (v *VAD) NoiseFloor() float64 { return v.noiseFloor }

// Threshold returns the current dynamic energy threshold.
func (v *VAD) Threshold() float64 {
	return max(v.config.MinEnergy, v.noiseFloor*v.config.Multiplier)
}

// Classify feeds one frame observed at now through the detector.
func (v *VAD) Classify(in Input, now time.Time) Result {
	if !v.inPhrase {
		a := v.config.NoiseAlpha
		v.noiseFloor = (1-a)*v.noiseFloor + a*in.Energy
	}
	threshold := v.Threshold()

	if now.Sub(v.listenStart) < v.config.Warmup {
		v.speechRun = 0
		return Result{Event: VADIgnored}
	}

	inCooldown := !v.lastEnd.IsZero() && now.Sub(v.lastEnd) < v.config.Cooldown
	speechLike := in.MFCC != nil && in.Energy > threshold && !inCooldown

	switch {
	case speechLike:
		v.silenceRun = 0
		v.speechRun++
		if !v.inPhrase && v.speechRun >= v.config.StartFrames {
			v.inPhrase = true
			v.phraseStart = now
			return Result{Event: VADPhraseStarted, Append: true}
		}
		if v.inPhrase {
			return Result{Event: VADAppended, Append: true}
		}
		return Result{Event: VADIgnored}

	case v.inPhrase:
		v.silenceRun++
		v.speechRun = 0
		if v.silenceRun >= v.config.EndFrames {
			d := now.Sub(v.phraseStart)
			v.inPhrase = false
			v.silenceRun = 0
			v.lastEnd = now
			return Result{Event: VADPhraseEnded, Duration: d}
		}
		if v.silenceRun <= v.config.TrailingFrames && in.MFCC != nil {
			return Result{Event: VADAppended, Append: true}
		}
		return Result{Event: VADIgnored}

	default:
		v.speechRun = 0
		return Result{Event: VADIgnored}
	}
}
