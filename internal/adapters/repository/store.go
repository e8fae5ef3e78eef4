// Package repository defines the report store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
)

// StoredReport is a mini-report plus its storage envelope.
type StoredReport struct {
	SessionID string           `json:"session_id"`
	ChildID   string           `json:"child_id"`
	Report    model.MiniReport `json:"report"`
	StoredAt  time.Time        `json:"stored_at"`
}

// Store provides access to scored session reports, keyed by child.
type Store interface {
	// SaveReport appends a scored session for a child.
	SaveReport(ctx context.Context, childID, sessionID string, report model.MiniReport) error

	// Reports returns a child's reports in storage order.
	// Returns ErrChildNotFound when the child has no reports.
	Reports(ctx context.Context, childID string) ([]StoredReport, error)

	// LatestScores returns the most recent score per game for a child,
	// the input shape for the domain aggregator.
	// Returns ErrChildNotFound when the child has no reports.
	LatestScores(ctx context.Context, childID string) ([]model.GameScore, error)

	// Children returns the number of distinct children tracked.
	Children(ctx context.Context) int

	// ReportCount returns the total number of stored reports.
	ReportCount(ctx context.Context) int
}
