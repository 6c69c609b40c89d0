package model

import "slices"

// HeaderStatus reports whether a checklist header was found in a response.
type HeaderStatus string

const (
	Present HeaderStatus = "PRESENT"
	Missing HeaderStatus = "MISSING"
)

var checklist = [...]string{
	"content-security-policy",
	"strict-transport-security",
	"x-frame-options",
	"x-content-type-options",
	"referrer-policy",
}

// Checklist returns the security headers every target is checked for, in
// their fixed order. Names are lower-case.
func Checklist() []string {
	return slices.Clone(checklist[:])
}

// HeaderAnalysis maps each checklist header to its status.
type HeaderAnalysis map[string]HeaderStatus

// Present returns the headers marked PRESENT, in checklist order.
func (a HeaderAnalysis) Present() []string {
	return a.filter(Present)
}

// Missing returns the headers marked MISSING, in checklist order.
func (a HeaderAnalysis) Missing() []string {
	return a.filter(Missing)
}

func (a HeaderAnalysis) filter(status HeaderStatus) []string {
	var names []string
	for _, name := range checklist {
		if a[name] == status {
			names = append(names, name)
		}
	}
	return names
}

// AnalysisResponse is the result returned for a single analyzed URL.
type AnalysisResponse struct {
	Analysis   HeaderAnalysis `json:"analysis"`
	AIAnalysis string         `json:"ai_analysis"`
}

// BatchResult is one entry of a multi-URL analysis. Exactly one of Response
// and Error is set.
type BatchResult struct {
	URL      string            `json:"url"`
	Response *AnalysisResponse `json:"result,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
