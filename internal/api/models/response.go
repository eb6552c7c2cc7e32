package models

import (
	"github.com/nestegg/wealth-projector/internal/domain"
	"github.com/nestegg/wealth-projector/internal/output"
)

// SimulateResponse is the payload for a completed projection run. Query
// is the canonical shareable query string for reproducing the run,
// including the resolved seed.
type SimulateResponse struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Query  string         `json:"query"`
	Report *output.Report `json:"report"`
}

// PathsResponse carries representative realized paths for diagnostics,
// keyed by final-balance percentile rank.
type PathsResponse struct {
	ID    string                    `json:"id"`
	Seed  int64                     `json:"seed"`
	Paths map[int]domain.PathResult `json:"paths"`
}

// ErrorResponse is the error envelope for all API errors.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a single API error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
