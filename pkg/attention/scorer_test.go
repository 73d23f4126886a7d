package attention

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/voicetyped/recite/pkg/corpus"
)

func buildCorpus(t *testing.T, n int) *corpus.Corpus {
	t.Helper()
	r := rand.New(rand.NewSource(int64(n)))
	records := make([]corpus.Record, n)
	for i := range records {
		seq := make([][]float64, 8)
		for j := range seq {
			row := make([]float64, corpus.Coefficients)
			for k := range row {
				row[k] = r.NormFloat64()
			}
			seq[j] = row
		}
		records[i] = corpus.Record{
			ID:           fmt.Sprintf("p%d", i),
			Index:        i,
			Duration:     1.0,
			MFCCSequence: seq,
		}
	}
	c, err := corpus.New(records)
	if err != nil {
		t.Fatalf("corpus.New: %v", err)
	}
	return c
}

// withDistances makes s return a fixed DTW distance per reference index.
// Indexes missing from dists score 5.
func withDistances(s *Scorer, dists map[int]float64) {
	byRef := make(map[*corpus.Vector]int)
	for i := 0; i < s.corpus.Len(); i++ {
		if ref := s.corpus.Normalized(i); len(ref) > 0 {
			byRef[&ref[0]] = i
		}
	}
	s.distance = func(ref, _ []corpus.Vector, _ float64) float64 {
		if d, ok := dists[byRef[&ref[0]]]; ok {
			return d
		}
		return 5
	}
}

func spoken(c *corpus.Corpus, idx int) []corpus.Vector {
	p, _ := c.Phrase(idx)
	return p.Frames
}

func TestCandidates(t *testing.T) {
	s := NewScorer(buildCorpus(t, 30), DefaultParams())

	tests := []struct {
		name    string
		current int
		streak  int
		want    []int
	}{
		{"start of reading", -1, 0, []int{0, 1, 2, 3}},
		{"after first line", 0, 0, []int{0, 1, 2, 3, 4}},
		{"middle", 10, 0, []int{8, 9, 10, 11, 12, 13, 14}},
		{"widened", 10, 2, []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
		// 30 real phrases plus the terminal one: indexes 0..30.
		{"end of corpus", 29, 0, []int{27, 28, 29, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Candidates(tt.current, tt.streak)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Candidates(%d, %d) = %v, want %v", tt.current, tt.streak, got, tt.want)
			}
		})
	}
}

func TestCandidatesWidenMonotonically(t *testing.T) {
	s := NewScorer(buildCorpus(t, 40), DefaultParams())
	for _, current := range []int{-1, 0, 5, 20, 39} {
		prev := map[int]bool{}
		for streak := 0; streak <= 20; streak++ {
			got := map[int]bool{}
			for _, i := range s.Candidates(current, streak) {
				got[i] = true
			}
			for i := range prev {
				if !got[i] {
					t.Fatalf("current=%d streak=%d dropped candidate %d", current, streak, i)
				}
			}
			prev = got
		}
	}
}

func TestRadiusCapped(t *testing.T) {
	s := NewScorer(buildCorpus(t, 5), DefaultParams())
	for streak, want := range map[int]int{0: 3, 1: 4, 7: 10, 8: 10, 20: 10} {
		if got := s.Radius(streak); got != want {
			t.Errorf("Radius(%d) = %d, want %d", streak, got, want)
		}
	}
}

func TestPositionPenalty(t *testing.T) {
	s := NewScorer(corpus.Empty(), DefaultParams())
	tests := []struct {
		candidate, current, expected int
		want                         float64
	}{
		{5, 4, 5, 0},
		{4, 4, 5, 0.25},
		{3, 4, 5, 0.30},
		{8, 4, 5, 0.45},
		{10, 4, 5, 0.75},
		// Expected clamped onto current at the end of the corpus.
		{7, 7, 7, 0},
	}
	for _, tt := range tests {
		got := s.PositionPenalty(tt.candidate, tt.current, tt.expected)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PositionPenalty(%d,%d,%d) = %g, want %g", tt.candidate, tt.current, tt.expected, got, tt.want)
		}
	}
}

func TestDurationPenalty(t *testing.T) {
	s := NewScorer(corpus.Empty(), DefaultParams())
	tests := []struct {
		ref, spoken, want float64
	}{
		{2, 2, 0},
		{2, 3.5, 0},
		{2, 4, 0.125},
		{1, 10, 0.6},
		// Reference duration floored at 50ms.
		{0, 1.55, 0},
		{0, 2.05, 0.125},
	}
	for _, tt := range tests {
		got := s.DurationPenalty(tt.ref, tt.spoken)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DurationPenalty(%g, %g) = %g, want %g", tt.ref, tt.spoken, got, tt.want)
		}
	}
}

func TestScoreExactRepeatOfExpected(t *testing.T) {
	c := buildCorpus(t, 10)
	s := NewScorer(c, DefaultParams())

	m, dec := s.Score(spoken(c, 3), time.Second, 2, 0)
	if m == nil {
		t.Fatalf("expected accept, decision = %+v", dec)
	}
	if m.Index != 3 || m.Phrase.ID != "p3" {
		t.Errorf("matched %d (%s), want 3", m.Index, m.Phrase.ID)
	}
	if m.DTW > 1e-9 || m.Similarity != 1 {
		t.Errorf("dtw = %g similarity = %g, want 0 and 1", m.DTW, m.Similarity)
	}
	if dec.Reason != ReasonHard {
		t.Errorf("reason = %s, want hard", dec.Reason)
	}
}

func TestScoreScenarioA(t *testing.T) {
	c := buildCorpus(t, 3)
	s := NewScorer(c, DefaultParams())
	withDistances(s, map[int]float64{0: 2.1, 1: 0.5, 2: 2.4})

	m, dec := s.Score(spoken(c, 1), time.Second, 0, 0)
	if m == nil {
		t.Fatalf("expected accept, decision = %+v", dec)
	}
	if m.Index != 1 {
		t.Errorf("matched %d, want 1", m.Index)
	}
	if m.Level != LevelHigh {
		t.Errorf("level = %s, want high", m.Level)
	}
	if math.Abs(m.Similarity-0.75) > 1e-9 {
		t.Errorf("similarity = %g, want 0.75", m.Similarity)
	}
	// The terminal phrase has no reference frames and is never scored.
	for _, cand := range dec.Candidates {
		if cand.ID == corpus.TerminalID {
			t.Error("terminal phrase was scored")
		}
	}
}

func TestScoreScenarioBHardAcceptOverridesPosition(t *testing.T) {
	c := buildCorpus(t, 12)
	s := NewScorer(c, DefaultParams())
	// Index 5 carries a 0.45 position penalty from expected 2: combined 0.9.
	// Index 2 is the runner-up at 1.3.
	withDistances(s, map[int]float64{5: 0.45, 2: 1.3})

	m, dec := s.Score(spoken(c, 5), time.Second, 1, 0)
	if m == nil {
		t.Fatalf("expected accept, decision = %+v", dec)
	}
	if m.Index != 5 {
		t.Errorf("matched %d, want 5", m.Index)
	}
	if math.Abs(m.Combined-0.9) > 1e-9 {
		t.Errorf("combined = %g, want 0.9", m.Combined)
	}
	if dec.Reason != ReasonHard {
		t.Errorf("reason = %s, want hard", dec.Reason)
	}
}

func TestScoreGate(t *testing.T) {
	c := buildCorpus(t, 12)

	tests := []struct {
		name    string
		dists   map[int]float64
		current int
		accept  bool
		reason  Reason
		level   Level
	}{
		{
			// Combined 1.0 accepts even with a zero margin.
			name:    "hard accept without margin",
			dists:   map[int]float64{5: 1.0, 6: 0.85},
			current: 4,
			accept:  true,
			reason:  ReasonHard,
			level:   LevelLow,
		},
		{
			name:    "soft accept on medium confidence",
			dists:   map[int]float64{5: 1.5, 6: 1.55},
			current: 4,
			accept:  true,
			reason:  ReasonSoft,
			level:   LevelMedium,
		},
		{
			name:    "next line bias",
			dists:   map[int]float64{5: 1.4, 6: 1.32},
			current: 4,
			accept:  true,
			reason:  ReasonNextBias,
			level:   LevelLow,
		},
		{
			name:    "ambiguous far candidate rejected",
			dists:   map[int]float64{8: 1.0, 5: 1.46},
			current: 4,
			accept:  false,
			reason:  ReasonRejected,
			level:   LevelLow,
		},
		{
			name:    "weak everywhere rejected",
			dists:   map[int]float64{},
			current: 4,
			accept:  false,
			reason:  ReasonRejected,
			level:   LevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(c, DefaultParams())
			withDistances(s, tt.dists)

			m, dec := s.Score(spoken(c, 0), time.Second, tt.current, 0)
			if (m != nil) != tt.accept {
				t.Fatalf("accepted = %v, want %v (decision %+v)", m != nil, tt.accept, dec)
			}
			if dec.Reason != tt.reason {
				t.Errorf("reason = %s, want %s", dec.Reason, tt.reason)
			}
			if dec.Level != tt.level {
				t.Errorf("level = %s, want %s", dec.Level, tt.level)
			}
			if dec.Reason.Accepted() != tt.accept {
				t.Errorf("Reason.Accepted() = %v", dec.Reason.Accepted())
			}
		})
	}
}

func TestScoreEmptyCorpusRejects(t *testing.T) {
	s := NewScorer(corpus.Empty(), DefaultParams())
	m, dec := s.Score([]corpus.Vector{{1, 2, 3}}, time.Second, -1, 0)
	if m != nil {
		t.Fatal("expected reject on empty corpus")
	}
	if dec.Reason != ReasonNoCandidates {
		t.Errorf("reason = %s, want no_candidates", dec.Reason)
	}
	if dec.Expected != -1 {
		t.Errorf("expected = %d, want -1", dec.Expected)
	}
}

func TestScoreSingleCandidateRelativeMargin(t *testing.T) {
	c := buildCorpus(t, 1)
	s := NewScorer(c, DefaultParams())
	withDistances(s, map[int]float64{0: 1.6})

	m, dec := s.Score(spoken(c, 0), time.Second, -1, 0)
	if dec.RelativeMargin != 1 {
		t.Errorf("relative margin = %g, want 1", dec.RelativeMargin)
	}
	if dec.Margin != 1.6 {
		t.Errorf("margin = %g, want 1.6", dec.Margin)
	}
	if m == nil || dec.Level != LevelMedium {
		t.Errorf("want medium accept, got match=%v level=%s", m != nil, dec.Level)
	}
}

func TestLevelText(t *testing.T) {
	b, err := json.Marshal(map[string]Level{"level": LevelMedium})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"level":"medium"}` {
		t.Errorf("json = %s", b)
	}

	var l Level
	if err := l.UnmarshalText([]byte("high")); err != nil || l != LevelHigh {
		t.Errorf("unmarshal high: %v %v", l, err)
	}
	if err := l.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown level")
	}
}
