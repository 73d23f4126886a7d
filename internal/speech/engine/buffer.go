package engine

import "github.com/voicetyped/recite/pkg/corpus"

// PhraseBuffer accumulates the frames of the phrase in progress.
type PhraseBuffer struct {
	frames   []corpus.Vector
	energies []float64
}

// Append adds one frame and its energy.
func (b *PhraseBuffer) Append(v corpus.Vector, energy float64) {
	b.frames = append(b.frames, v)
	b.energies = append(b.energies, energy)
}

// Frames returns the buffered feature vectors. The slice is only valid until
// the next Reset.
func (b *PhraseBuffer) Frames() []corpus.Vector { return b.frames }

// Energies returns the buffered frame energies.
func (b *PhraseBuffer) Energies() []float64 { return b.energies }

// Len returns the number of buffered frames.
func (b *PhraseBuffer) Len() int { return len(b.frames) }

// MeanEnergy returns the average energy of the buffered frames, or 0.
func (b *PhraseBuffer) MeanEnergy() float64 {
	if len(b.energies) == 0 {
		return 0
	}
	var sum float64
	for _, e := range b.energies {
		sum += e
	}
	return sum / float64(len(b.energies))
}

// Reset empties the buffer, keeping its capacity.
func (b *PhraseBuffer) Reset() {
	b.frames = b.frames[:0]
	b.energies = b.energies[:0]
}
