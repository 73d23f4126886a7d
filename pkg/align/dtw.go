// Package align computes banded dynamic-time-warping distances between
// feature-frame sequences.
package align

import (
	"math"

	"github.com/voicetyped/recite/pkg/corpus"
)

// DefaultBandRatio bounds the warping band to 30% of the longer sequence.
const DefaultBandRatio = 0.3

// FrameDistance is the Euclidean distance between two frames.
func FrameDistance(a, b corpus.Vector) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// BandWidth returns the half-width of the evaluated band for sequences of
// length n and m. It is never narrower than |n-m|+1, so at least one monotone
// path always fits.
func BandWidth(n, m int, bandRatio float64) int {
	w := int(math.Floor(float64(max(n, m)) * bandRatio))
	diff := n - m
	if diff < 0 {
		diff = -diff
	}
	return max(w, diff+1)
}

// Distance returns the banded DTW distance between a and b, normalized by
// len(a)+len(b). It returns +Inf when either sequence is empty.
func Distance(a, b []corpus.Vector, bandRatio float64) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return math.Inf(1)
	}

	w := BandWidth(n, m, bandRatio)
	inf := math.Inf(1)

	// Two rolling rows of the (n+1) x (m+1) cost matrix.
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = inf
	}
	prev[0] = 0

	for i := 1; i <= n; i++ {
		for j := range curr {
			curr[j] = inf
		}

		center := int(math.Round(float64(i) / float64(n) * float64(m)))
		lo := max(1, center-w)
		hi := min(m, center+w)

		for j := lo; j <= hi; j++ {
			best := prev[j]
			if curr[j-1] < best {
				best = curr[j-1]
			}
			if prev[j-1] < best {
				best = prev[j-1]
			}
			curr[j] = FrameDistance(a[i-1], b[j-1]) + best
		}

		prev, curr = curr, prev
	}

	return prev[m] / float64(n+m)
}
