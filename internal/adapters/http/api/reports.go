// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wasal/kidscore/internal/adapters/repository"
)

// ReportsHandler handles report listing requests.
type ReportsHandler struct {
	deps Dependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps Dependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

// reportsResponse is the wire shape for GET /reports/{child_id}.
type reportsResponse struct {
	ChildID string                    `json:"child_id"`
	Reports []repository.StoredReport `json:"reports"`
}

// HandleGetReports handles GET /reports/{child_id} requests.
func (h *ReportsHandler) HandleGetReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	childID := strings.TrimPrefix(r.URL.Path, "/reports/")
	if childID == "" || strings.Contains(childID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	reports, err := h.deps.ChildReports(r.Context(), childID)
	if err != nil {
		if errors.Is(err, repository.ErrChildNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, reportsResponse{ChildID: childID, Reports: reports})
}
