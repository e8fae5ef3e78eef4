// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wasal/kidscore/internal/domain/scoring"
)

// ScoreHandler handles synchronous scoring requests.
type ScoreHandler struct {
	deps Dependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// HandlePostScore handles POST /score requests. Unlike /sessions this
// scores inline and returns the mini-report in the response body.
func (h *ScoreHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_score"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}

	if h.deps.SeenAndRecord(r.Context(), req.SessionID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	report, err := h.deps.Score(r.Context(), req.session())
	if err != nil {
		// A too-short session is a client condition, not a server fault.
		// Let it be resubmitted once the child replays.
		h.deps.Unrecord(r.Context(), req.SessionID)
		if errors.Is(err, scoring.ErrInsufficientData) {
			writeError(w, http.StatusUnprocessableEntity, "insufficient_data", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
