package attention

import "fmt"

// Level is the coarse confidence label attached to a match.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

var levelNames = map[Level]string{
	LevelNone:   "none",
	LevelLow:    "low",
	LevelMedium: "medium",
	LevelHigh:   "high",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	for k, v := range levelNames {
		if v == string(b) {
			*l = k
			return nil
		}
	}
	return fmt.Errorf("unknown confidence level %q", b)
}

// Reason names the gate path that decided a phrase.
type Reason string

const (
	ReasonHard         Reason = "hard"
	ReasonSoft         Reason = "soft"
	ReasonNextBias     Reason = "next_bias"
	ReasonRejected     Reason = "rejected"
	ReasonNoCandidates Reason = "no_candidates"
)

// Accepted reports whether the reason is one of the accept paths.
func (r Reason) Accepted() bool {
	return r == ReasonHard || r == ReasonSoft || r == ReasonNextBias
}
