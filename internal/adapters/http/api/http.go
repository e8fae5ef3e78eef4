// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wasal/kidscore/internal/adapters/repository"
	"github.com/wasal/kidscore/internal/domain/domains"
	"github.com/wasal/kidscore/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// SeenAndRecord atomically checks and records a session id.
	// Returns true when the id was already seen.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes a session id so the submission can be retried.
	Unrecord(ctx context.Context, id string)

	// Enqueue pushes a session for async scoring. Returns false on backpressure.
	Enqueue(ctx context.Context, s model.Session) bool

	// Score runs the scoring pipeline synchronously.
	Score(ctx context.Context, s model.Session) (model.MiniReport, error)

	// Read operations expose stored reports and derived domain scores.
	ChildReports(ctx context.Context, childID string) ([]repository.StoredReport, error)
	ChildDomains(ctx context.Context, childID string) (map[domains.Domain]int, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	sessionsHandler *SessionsHandler
	scoreHandler    *ScoreHandler
	reportsHandler  *ReportsHandler
	domainsHandler  *DomainsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		sessionsHandler: NewSessionsHandler(deps),
		scoreHandler:    NewScoreHandler(deps),
		reportsHandler:  NewReportsHandler(deps),
		domainsHandler:  NewDomainsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/sessions", MetricsMiddleware(s.sessionsHandler.HandlePostSession, "sessions"))
	mux.HandleFunc("/score", MetricsMiddleware(s.scoreHandler.HandlePostScore, "score"))
	mux.HandleFunc("/reports/", MetricsMiddleware(s.reportsHandler.HandleGetReports, "reports"))
	mux.HandleFunc("/domains/", MetricsMiddleware(s.domainsHandler.HandleGetDomains, "domains"))
}

// sessionRequest mirrors the wire schema for POST /sessions and /score.
type sessionRequest struct {
	SessionID string           `json:"session_id"`
	ChildID   string           `json:"child_id"`
	Game      string           `json:"game"`
	Age       int              `json:"age"`
	Events    []model.RawEvent `json:"events"`
}

func (s sessionRequest) validate() error {
	switch {
	case strings.TrimSpace(s.SessionID) == "":
		return errors.New("missing session_id")
	case strings.TrimSpace(s.ChildID) == "":
		return errors.New("missing child_id")
	case strings.TrimSpace(s.Game) == "":
		return errors.New("missing game")
	case s.Age <= 0:
		return errors.New("missing or invalid age")
	case len(s.Events) == 0:
		return errors.New("missing events")
	}
	if !model.GameType(s.Game).Known() {
		return errors.New("unknown game")
	}
	return nil
}

// session converts the request into the domain shape.
func (s sessionRequest) session() model.Session {
	return model.Session{
		SessionID: s.SessionID,
		ChildID:   s.ChildID,
		Game:      model.GameType(s.Game),
		Age:       s.Age,
		Events:    s.Events,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
