package api

// AttemptResponse is the API response for one match attempt.
type AttemptResponse struct {
	ID            string  `json:"id"`
	PhraseID      string  `json:"phrase_id,omitempty"`
	PhraseIndex   int     `json:"phrase_index"`
	ExpectedIndex int     `json:"expected_index"`
	Combined      float64 `json:"combined"`
	Similarity    float64 `json:"similarity"`
	Level         string  `json:"level"`
	Accepted      bool    `json:"accepted"`
	Reason        string  `json:"reason"`
	FailureStreak int     `json:"failure_streak"`
	DurationMs    int64   `json:"duration_ms"`
	FrameCount    int     `json:"frame_count"`
	CreatedAt     string  `json:"created_at"`
}

// AttemptListResponse lists a session's attempts.
type AttemptListResponse struct {
	SessionID string            `json:"session_id"`
	Accepted  int64             `json:"accepted"`
	Attempts  []AttemptResponse `json:"attempts"`
}

// ErrorResponse is returned on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
