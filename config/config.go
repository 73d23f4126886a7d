package config

import (
	"time"

	"github.com/pitabwire/frame/config"

	"github.com/voicetyped/recite/internal/speech/engine"
	"github.com/voicetyped/recite/pkg/attention"
	"github.com/voicetyped/recite/pkg/reading"
)

// ReciteConfig holds configuration for the recite service.
type ReciteConfig struct {
	config.ConfigurationDefault

	// Corpus
	CorpusPath  string `envDefault:"./corpus/audio-features.json" env:"CORPUS_PATH"`
	CorpusWatch bool   `envDefault:"true"                         env:"CORPUS_WATCH"`

	// Voice activity detection
	VADMinEnergy         float64 `envDefault:"0.004" env:"VAD_MIN_ENERGY"`
	VADNoiseAlpha        float64 `envDefault:"0.05"  env:"VAD_NOISE_ALPHA"`
	VADMultiplier        float64 `envDefault:"3.2"   env:"VAD_MULTIPLIER"`
	VADInitialNoiseFloor float64 `envDefault:"0.002" env:"VAD_INITIAL_NOISE_FLOOR"`
	VADStartFrames       int     `envDefault:"2"     env:"VAD_START_FRAMES"`
	VADEndFrames         int     `envDefault:"12"    env:"VAD_END_FRAMES"`
	VADTrailingFrames    int     `envDefault:"2"     env:"VAD_TRAILING_FRAMES"`
	VADCooldownMs        int     `envDefault:"200"   env:"VAD_COOLDOWN_MS"`
	VADWarmupMs          int     `envDefault:"600"   env:"VAD_WARMUP_MS"`

	// Matching
	MinPhraseFrames int     `envDefault:"15"  env:"MIN_PHRASE_FRAMES"`
	PreviewDelayMs  int     `envDefault:"120" env:"PREVIEW_DELAY_MS"`
	DTWBandRatio    float64 `envDefault:"0.3" env:"DTW_BAND_RATIO"`

	// Sessions
	SessionTTLMin   int  `envDefault:"30"    env:"SESSION_TTL_MIN"`
	ProgressEnabled bool `envDefault:"false" env:"PROGRESS_ENABLED"`
	AuthEnabled     bool `envDefault:"false" env:"AUTH_ENABLED"`
}

// VADConfig builds the voice activity detector parameters.
func (c *ReciteConfig) VADConfig() engine.VADConfig {
	return engine.VADConfig{
		MinEnergy:         c.VADMinEnergy,
		NoiseAlpha:        c.VADNoiseAlpha,
		Multiplier:        c.VADMultiplier,
		InitialNoiseFloor: c.VADInitialNoiseFloor,
		StartFrames:       c.VADStartFrames,
		EndFrames:         c.VADEndFrames,
		TrailingFrames:    c.VADTrailingFrames,
		Cooldown:          time.Duration(c.VADCooldownMs) * time.Millisecond,
		Warmup:            time.Duration(c.VADWarmupMs) * time.Millisecond,
	}
}

// MatcherOptions builds per-session matcher options. Clock, scheduler and
// listener are left for the caller.
func (c *ReciteConfig) MatcherOptions() reading.Options {
	opts := reading.DefaultOptions()
	opts.VAD = c.VADConfig()
	opts.MinPhraseFrames = c.MinPhraseFrames
	opts.PreviewDelay = time.Duration(c.PreviewDelayMs) * time.Millisecond

	scoring := attention.DefaultParams()
	if c.DTWBandRatio > 0 {
		scoring.BandRatio = c.DTWBandRatio
	}
	opts.Scoring = scoring
	return opts
}

// SessionTTL is the idle time after which a session is closed.
func (c *ReciteConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}
