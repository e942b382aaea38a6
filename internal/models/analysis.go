package models

import "github.com/Conceptual-Machines/harmonia-api/internal/theory"

// AnalyzeRequest is the wire form of one analysis call.
type AnalyzeRequest struct {
	Chord string   `json:"chord" binding:"required"`
	Notes []string `json:"notes" binding:"required"`
	Key   string   `json:"key"` // optional; falls back to the server's global key
}

// AnalyzeResponse wraps the analysis result with the request ID for
// correlation.
type AnalyzeResponse struct {
	RequestID string                 `json:"request_id,omitempty"`
	Result    *theory.AnalysisResult `json:"result"`
}

// ParseChordRequest asks only for chord parsing and required tones.
type ParseChordRequest struct {
	Chord string `json:"chord" binding:"required"`
}

// ParseChordResponse returns the parsed descriptor and derived tones.
type ParseChordResponse struct {
	Chord         *theory.ChordDescriptor `json:"chord"`
	RequiredTones theory.RequiredTones    `json:"required_tones"`
}

// ScaleResponse returns the four standard scales on one tonic.
type ScaleResponse struct {
	Tonic         string   `json:"tonic"`
	Major         []string `json:"major"`
	NaturalMinor  []string `json:"natural_minor"`
	HarmonicMinor []string `json:"harmonic_minor"`
	MelodicMinor  []string `json:"melodic_minor"`
}

// ErrorResponse is the uniform error body for 4xx/5xx replies.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
