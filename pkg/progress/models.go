package progress

import (
	"github.com/pitabwire/frame/data"
)

// Attempt records one matching decision for a spoken phrase.
type Attempt struct {
	data.BaseModel

	SessionID     string  `gorm:"type:varchar(50);not null;index:idx_attempt_session" json:"session_id"`
	EventID       string  `gorm:"type:varchar(50);not null;uniqueIndex"             json:"event_id"`
	PhraseID      string  `gorm:"type:varchar(100)"                                   json:"phrase_id,omitempty"`
	PhraseIndex   int     `gorm:"default:-1"                                          json:"phrase_index"`
	ExpectedIndex int     `gorm:"default:0"                                           json:"expected_index"`
	Combined      float64 `gorm:"default:0"                                           json:"combined"`
	DTW           float64 `gorm:"default:0"                                           json:"dtw"`
	Similarity    float64 `gorm:"default:0"                                           json:"similarity"`
	Level         string  `gorm:"type:varchar(10);not null"                           json:"level"`
	Accepted      bool    `gorm:"default:false;index:idx_attempt_accepted"            json:"accepted"`
	Reason        string  `gorm:"type:varchar(20);not null"                           json:"reason"`
	FailureStreak int     `gorm:"default:0"                                           json:"failure_streak"`
	DurationMs    int64   `gorm:"default:0"                                           json:"duration_ms"`
	FrameCount    int     `gorm:"default:0"                                           json:"frame_count"`
}

func (Attempt) TableName() string { return "match_attempts" }
