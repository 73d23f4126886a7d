package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/voicetyped/recite/pkg/progress"
)

const maxPageSize = 500

// AttemptReader is the read side of the attempt store.
type AttemptReader interface {
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]progress.Attempt, error)
	CountAccepted(ctx context.Context, sessionID string) (int64, error)
}

// Handler provides REST endpoints for recorded match attempts.
type Handler struct {
	repo AttemptReader
}

// NewHandler creates a new progress API handler.
func NewHandler(repo AttemptReader) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes registers the progress routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/sessions/{id}/attempts", h.ListAttempts)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// ListAttempts handles GET /api/v1/sessions/{id}/attempts?limit=&offset=
func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	limit, err := queryInt(r, "limit", 100)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	limit = min(limit, maxPageSize)
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	attempts, err := h.repo.ListBySession(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list attempts")
		return
	}
	accepted, err := h.repo.CountAccepted(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count attempts")
		return
	}

	resp := AttemptListResponse{
		SessionID: id,
		Accepted:  accepted,
		Attempts:  make([]AttemptResponse, 0, len(attempts)),
	}
	for i := range attempts {
		resp.Attempts = append(resp.Attempts, toAttemptResponse(&attempts[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toAttemptResponse(a *progress.Attempt) AttemptResponse {
	return AttemptResponse{
		ID:            a.ID,
		PhraseID:      a.PhraseID,
		PhraseIndex:   a.PhraseIndex,
		ExpectedIndex: a.ExpectedIndex,
		Combined:      a.Combined,
		Similarity:    a.Similarity,
		Level:         a.Level,
		Accepted:      a.Accepted,
		Reason:        a.Reason,
		FailureStreak: a.FailureStreak,
		DurationMs:    a.DurationMs,
		FrameCount:    a.FrameCount,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
