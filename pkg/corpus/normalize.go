package corpus

import "math"

// degenerateStd is the coefficient spread below which a frame is treated as
// silent and normalized to the zero vector.
const degenerateStd = 1e-3

// NormalizeFrame returns the per-frame z-score of v across its coefficients.
func NormalizeFrame(v Vector) Vector {
	var mean float64
	for _, c := range v {
		mean += c
	}
	mean /= Coefficients

	var variance float64
	for _, c := range v {
		d := c - mean
		variance += d * d
	}
	std := math.Sqrt(variance / Coefficients)

	var out Vector
	if std < degenerateStd {
		return out
	}
	for i, c := range v {
		out[i] = (c - mean) / std
	}
	return out
}

// NormalizeSequence normalizes every frame of seq into a new slice.
func NormalizeSequence(seq []Vector) []Vector {
	out := make([]Vector, len(seq))
	for i, v := range seq {
		out[i] = NormalizeFrame(v)
	}
	return out
}

// VectorFromSlice converts a raw coefficient slice into a Vector.
// Slices of Coefficients+1 values are assumed to still carry coefficient 0,
// which is dropped. Any other length is rejected.
func VectorFromSlice(raw []float64) (Vector, bool) {
	var v Vector
	switch len(raw) {
	case Coefficients:
		copy(v[:], raw)
	case Coefficients + 1:
		copy(v[:], raw[1:])
	default:
		return v, false
	}
	return v, true
}
