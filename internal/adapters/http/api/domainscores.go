// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wasal/kidscore/internal/adapters/repository"
	"github.com/wasal/kidscore/internal/domain/domains"
)

// DomainsHandler handles cross-domain score requests.
type DomainsHandler struct {
	deps Dependencies
}

// NewDomainsHandler creates a new domains handler.
func NewDomainsHandler(deps Dependencies) *DomainsHandler {
	return &DomainsHandler{deps: deps}
}

// domainScore pairs a domain score with its qualitative band.
type domainScore struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// domainsResponse is the wire shape for GET /domains/{child_id}.
type domainsResponse struct {
	ChildID string                 `json:"child_id"`
	Domains map[string]domainScore `json:"domains"`
}

// HandleGetDomains handles GET /domains/{child_id} requests.
func (h *DomainsHandler) HandleGetDomains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	childID := strings.TrimPrefix(r.URL.Path, "/domains/")
	if childID == "" || strings.Contains(childID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	scores, err := h.deps.ChildDomains(r.Context(), childID)
	if err != nil {
		if errors.Is(err, repository.ErrChildNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	resp := domainsResponse{ChildID: childID, Domains: make(map[string]domainScore, len(scores))}
	for domain, score := range scores {
		resp.Domains[string(domain)] = domainScore{Score: score, Level: domains.Level(score)}
	}
	writeJSON(w, http.StatusOK, resp)
}
