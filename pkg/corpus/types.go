package corpus

// Coefficients is the number of cepstral coefficients kept per frame
// (coefficients 1..12; coefficient 0 tracks energy and is dropped).
const Coefficients = 12

// Vector is one frame's cepstral coefficients.
type Vector [Coefficients]float64

// Terminal phrase constants. The terminal phrase has no reference audio and is
// only reachable through the confident-final-speech rule.
const (
	TerminalID            = "final"
	TerminalTextPrimary   = "זֶה הַדָּבָר יְהוָה׃"
	TerminalTextSecondary = "This is the word of the LORD."
)

// Phrase is one entry of the reference corpus.
type Phrase struct {
	ID            string   `json:"id"`
	Index         int      `json:"index"`
	Filename      string   `json:"filename,omitempty"`
	TextPrimary   string   `json:"text_primary"`
	TextSecondary string   `json:"text_secondary"`
	Duration      float64  `json:"duration"` // seconds
	Frames        []Vector `json:"-"`
	Terminal      bool     `json:"terminal,omitempty"`
}

// Record is the on-disk corpus record.
type Record struct {
	ID            string      `json:"id"            yaml:"id"`
	Index         int         `json:"index"         yaml:"index"`
	Filename      string      `json:"filename"      yaml:"filename"`
	TextPrimary   string      `json:"text_primary"  yaml:"text_primary"`
	TextSecondary string      `json:"text_secondary" yaml:"text_secondary"`
	Duration      float64     `json:"duration"      yaml:"duration"`
	MFCCSequence  [][]float64 `json:"mfccSequence"  yaml:"mfccSequence"`
	AvgMFCC       []float64   `json:"avgMfcc"       yaml:"avgMfcc"`
	StdMFCC       []float64   `json:"stdMfcc"       yaml:"stdMfcc"`

	// Older corpus files name the display texts after their language.
	Hebrew  string `json:"Hebrew,omitempty"  yaml:"Hebrew,omitempty"`
	English string `json:"English,omitempty" yaml:"English,omitempty"`
}

func (r Record) primary() string {
	if r.TextPrimary != "" {
		return r.TextPrimary
	}
	return r.Hebrew
}

func (r Record) secondary() string {
	if r.TextSecondary != "" {
		return r.TextSecondary
	}
	return r.English
}
