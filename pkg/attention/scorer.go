// Package attention ranks reference phrases against a spoken phrase, biased
// toward the phrase expected next, and decides whether the best one is safe
// to accept.
package attention

import (
	"math"
	"sort"
	"time"

	"github.com/voicetyped/recite/pkg/align"
	"github.com/voicetyped/recite/pkg/corpus"
)

// Params tunes the candidate window, the penalties and the accept gate.
type Params struct {
	BaseRadius int
	MaxExtra   int
	MaxRadius  int
	BandRatio  float64

	RepeatPenalty  float64
	PerLinePenalty float64

	DurationWindow float64 // seconds of mismatch tolerated without penalty
	DurationSlope  float64
	DurationCap    float64
	MinRefDuration float64 // seconds

	HighCombined     float64
	HighMargin       float64
	MediumCombined   float64
	MediumMargin     float64
	HardAccept       float64
	NextBiasCombined float64
	NextBiasMargin   float64
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		BaseRadius:       3,
		MaxExtra:         8,
		MaxRadius:        10,
		BandRatio:        align.DefaultBandRatio,
		RepeatPenalty:    0.25,
		PerLinePenalty:   0.15,
		DurationWindow:   1.5,
		DurationSlope:    0.25,
		DurationCap:      0.6,
		MinRefDuration:   0.05,
		HighCombined:     1.15,
		HighMargin:       0.10,
		MediumCombined:   1.65,
		MediumMargin:     0.06,
		HardAccept:       1.05,
		NextBiasCombined: 1.45,
		NextBiasMargin:   0.04,
	}
}

// Candidate is one scored reference phrase.
type Candidate struct {
	Index    int     `json:"index"`
	ID       string  `json:"id"`
	DTW      float64 `json:"dtw"`
	Penalty  float64 `json:"penalty"`
	Combined float64 `json:"combined"`
}

// Match is an accepted candidate.
type Match struct {
	Phrase         corpus.Phrase
	Index          int
	DTW            float64
	Penalty        float64
	Combined       float64
	Similarity     float64
	RelativeMargin float64
	Level          Level
}

// Decision describes how a phrase was decided, accepted or not.
type Decision struct {
	Expected       int         `json:"expected"`
	Radius         int         `json:"radius"`
	Candidates     []Candidate `json:"candidates,omitempty"` // ranked best first
	Margin         float64     `json:"margin"`
	RelativeMargin float64     `json:"relative_margin"`
	Level          Level       `json:"level"`
	Reason         Reason      `json:"reason"`
}

// Best returns the top ranked candidate, if any.
func (d Decision) Best() (Candidate, bool) {
	if len(d.Candidates) == 0 {
		return Candidate{}, false
	}
	return d.Candidates[0], true
}

// Scorer scores spoken phrases against one corpus.
type Scorer struct {
	corpus   *corpus.Corpus
	params   Params
	distance func(ref, spoken []corpus.Vector, bandRatio float64) float64
}

// NewScorer creates a scorer over c.
func NewScorer(c *corpus.Corpus, params Params) *Scorer {
	return &Scorer{
		corpus:   c,
		params:   params,
		distance: align.Distance,
	}
}

// Params returns the scorer's tuning.
func (s *Scorer) Params() Params { return s.params }

// Expected returns the index expected after current, clamped into the corpus,
// or -1 for an empty corpus.
func (s *Scorer) Expected(current int) int {
	n := s.corpus.Len()
	if n == 0 {
		return -1
	}
	return max(0, min(n-1, current+1))
}

// Radius returns the candidate window radius for a failure streak.
func (s *Scorer) Radius(streak int) int {
	return min(s.params.MaxRadius, s.params.BaseRadius+min(s.params.MaxExtra, max(0, streak)))
}

// Candidates returns the sorted, deduplicated candidate indexes around the
// expected position.
func (s *Scorer) Candidates(current, streak int) []int {
	n := s.corpus.Len()
	if n == 0 {
		return nil
	}
	expected := s.Expected(current)
	radius := s.Radius(streak)

	set := make(map[int]struct{}, 2*radius+3)
	for i := max(0, expected-radius); i <= min(n-1, expected+radius); i++ {
		set[i] = struct{}{}
	}
	for _, i := range []int{current, current - 1} {
		if i >= 0 && i < n {
			set[i] = struct{}{}
		}
	}

	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// PositionPenalty biases scoring toward the expected index.
func (s *Scorer) PositionPenalty(candidate, current, expected int) float64 {
	switch candidate {
	case expected:
		return 0
	case current:
		return s.params.RepeatPenalty
	}
	d := candidate - expected
	if d < 0 {
		d = -d
	}
	return float64(d) * s.params.PerLinePenalty
}

// DurationPenalty penalizes large differences between the reference and
// spoken durations, both in seconds.
func (s *Scorer) DurationPenalty(refSeconds, spokenSeconds float64) float64 {
	ref := max(s.params.MinRefDuration, refSeconds)
	over := math.Abs(ref-spokenSeconds) - s.params.DurationWindow
	return min(s.params.DurationCap, max(0, over)*s.params.DurationSlope)
}

// Score ranks the candidate window against spoken and applies the accept
// gate. The returned match is nil when the phrase is rejected.
func (s *Scorer) Score(spoken []corpus.Vector, spokenDuration time.Duration, current, streak int) (*Match, Decision) {
	dec := Decision{
		Expected: s.Expected(current),
		Radius:   s.Radius(streak),
		Reason:   ReasonNoCandidates,
	}
	if len(spoken) == 0 {
		return nil, dec
	}

	normalized := corpus.NormalizeSequence(spoken)
	seconds := spokenDuration.Seconds()

	for _, idx := range s.Candidates(current, streak) {
		ref := s.corpus.Normalized(idx)
		if len(ref) == 0 {
			continue
		}
		p, _ := s.corpus.Phrase(idx)

		dtw := s.distance(ref, normalized, s.params.BandRatio)
		penalty := s.PositionPenalty(idx, current, dec.Expected) + s.DurationPenalty(p.Duration, seconds)
		dec.Candidates = append(dec.Candidates, Candidate{
			Index:    idx,
			ID:       p.ID,
			DTW:      dtw,
			Penalty:  penalty,
			Combined: dtw + penalty,
		})
	}
	if len(dec.Candidates) == 0 {
		return nil, dec
	}

	sort.SliceStable(dec.Candidates, func(i, j int) bool {
		return dec.Candidates[i].Combined < dec.Candidates[j].Combined
	})

	return s.decide(dec)
}

func (s *Scorer) decide(dec Decision) (*Match, Decision) {
	best := dec.Candidates[0]
	if len(dec.Candidates) > 1 {
		dec.Margin = dec.Candidates[1].Combined - best.Combined
		dec.RelativeMargin = dec.Margin / max(best.Combined, 1e-6)
	} else {
		dec.Margin = best.Combined
		dec.RelativeMargin = 1
	}
	dec.Level = s.classify(best.Combined, dec.RelativeMargin)

	p := s.params
	switch {
	case best.Combined < p.HardAccept:
		dec.Reason = ReasonHard
	case dec.Level >= LevelMedium:
		dec.Reason = ReasonSoft
	case best.Index == dec.Expected && best.Combined < p.NextBiasCombined && dec.RelativeMargin > p.NextBiasMargin:
		dec.Reason = ReasonNextBias
	default:
		dec.Reason = ReasonRejected
		return nil, dec
	}

	phrase, _ := s.corpus.Phrase(best.Index)
	return &Match{
		Phrase:         phrase,
		Index:          best.Index,
		DTW:            best.DTW,
		Penalty:        best.Penalty,
		Combined:       best.Combined,
		Similarity:     Similarity(best.Combined),
		RelativeMargin: dec.RelativeMargin,
		Level:          dec.Level,
	}, dec
}

func (s *Scorer) classify(combined, relativeMargin float64) Level {
	p := s.params
	switch {
	case combined < p.HighCombined && relativeMargin > p.HighMargin:
		return LevelHigh
	case combined < p.MediumCombined && relativeMargin > p.MediumMargin:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Similarity maps a combined score to a display confidence in [0, 1].
func Similarity(combined float64) float64 {
	return max(0, min(1, 1-combined/2))
}
