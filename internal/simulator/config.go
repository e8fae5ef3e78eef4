package simulator

import (
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
)

// Config holds configuration for a simulation run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumChildren int           // Number of simulated children
	NumSessions int           // Total number of sessions to generate
	Workers     int           // Number of concurrent submitters
	Timeout     time.Duration // HTTP request timeout
	Seed        int64         // RNG seed; same seed, same sessions
	LogFile     string        // Log file for run output
	Verbose     bool          // Enable verbose logging
}

// AckResponse mirrors the service acknowledgement for POST /sessions.
type AckResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// ReportsResponse mirrors GET /reports/{child_id}.
type ReportsResponse struct {
	ChildID string `json:"child_id"`
	Reports []struct {
		SessionID string           `json:"session_id"`
		Report    model.MiniReport `json:"report"`
	} `json:"reports"`
}

// DomainsResponse mirrors GET /domains/{child_id}.
type DomainsResponse struct {
	ChildID string `json:"child_id"`
	Domains map[string]struct {
		Score int    `json:"score"`
		Level string `json:"level"`
	} `json:"domains"`
}

// Stats holds simulation statistics.
type Stats struct {
	SessionsGenerated  int
	SessionsSubmitted  int
	SessionsSuccessful int
	SessionsDuplicate  int
	SessionsFailed     int
	ReportsRetrieved   int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
