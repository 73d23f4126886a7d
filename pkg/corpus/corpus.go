package corpus

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a corpus file holds no records.
var ErrEmpty = errors.New("corpus: no phrases")

// Corpus is the immutable, ordered set of reference phrases plus the
// synthetic terminal phrase. It is safe for concurrent reads.
type Corpus struct {
	phrases    []Phrase
	normalized [][]Vector
	lastReal   int
}

// Empty returns a corpus with zero lines. Every match against it rejects.
func Empty() *Corpus {
	return &Corpus{lastReal: -1}
}

// New validates records and builds a corpus from them, appending the terminal
// phrase after the last real record.
func New(records []Record) (*Corpus, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[string]int, len(records))
	phrases := make([]Phrase, 0, len(records)+1)
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d: id is required", i)
		}
		if prev, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("record %d: id %q already used by record %d", i, r.ID, prev)
		}
		seen[r.ID] = i
		if r.Index != i {
			return nil, fmt.Errorf("record %q: index %d does not match position %d", r.ID, r.Index, i)
		}
		if r.ID == TerminalID {
			return nil, fmt.Errorf("record %d: id %q is reserved for the terminal phrase", i, TerminalID)
		}
		if n := len(r.AvgMFCC); n != 0 && n != Coefficients {
			return nil, fmt.Errorf("record %q: avgMfcc has %d coefficients, want %d", r.ID, n, Coefficients)
		}
		if n := len(r.StdMFCC); n != 0 && n != Coefficients {
			return nil, fmt.Errorf("record %q: stdMfcc has %d coefficients, want %d", r.ID, n, Coefficients)
		}

		frames := make([]Vector, len(r.MFCCSequence))
		for j, raw := range r.MFCCSequence {
			if len(raw) != Coefficients {
				return nil, fmt.Errorf("record %q frame %d: %d coefficients, want %d", r.ID, j, len(raw), Coefficients)
			}
			copy(frames[j][:], raw)
		}

		phrases = append(phrases, Phrase{
			ID:            r.ID,
			Index:         r.Index,
			Filename:      r.Filename,
			TextPrimary:   r.primary(),
			TextSecondary: r.secondary(),
			Duration:      r.Duration,
			Frames:        frames,
		})
	}

	lastReal := len(phrases) - 1
	phrases = append(phrases, Phrase{
		ID:            TerminalID,
		Index:         lastReal + 1,
		TextPrimary:   TerminalTextPrimary,
		TextSecondary: TerminalTextSecondary,
		Terminal:      true,
	})

	normalized := make([][]Vector, len(phrases))
	for i, p := range phrases {
		normalized[i] = NormalizeSequence(p.Frames)
	}

	return &Corpus{
		phrases:    phrases,
		normalized: normalized,
		lastReal:   lastReal,
	}, nil
}

// Len returns the number of phrases including the terminal phrase.
func (c *Corpus) Len() int { return len(c.phrases) }

// TotalLines is the number of displayable lines, terminal phrase included.
func (c *Corpus) TotalLines() int { return len(c.phrases) }

// Phrase returns the phrase at index i.
func (c *Corpus) Phrase(i int) (Phrase, bool) {
	if i < 0 || i >= len(c.phrases) {
		return Phrase{}, false
	}
	return c.phrases[i], true
}

// Normalized returns the normalized reference frames for index i.
func (c *Corpus) Normalized(i int) []Vector {
	if i < 0 || i >= len(c.normalized) {
		return nil
	}
	return c.normalized[i]
}

// Phrases returns a copy of the phrase list.
func (c *Corpus) Phrases() []Phrase {
	out := make([]Phrase, len(c.phrases))
	copy(out, c.phrases)
	return out
}

// LastRealIndex is the index of the last phrase with reference audio, or -1.
func (c *Corpus) LastRealIndex() int { return c.lastReal }

// TerminalIndex is the index of the terminal phrase, or -1 for an empty corpus.
func (c *Corpus) TerminalIndex() int {
	if len(c.phrases) == 0 {
		return -1
	}
	return len(c.phrases) - 1
}

// TotalFrames returns the number of reference frames across all phrases.
func (c *Corpus) TotalFrames() int {
	n := 0
	for _, p := range c.phrases {
		n += len(p.Frames)
	}
	return n
}
