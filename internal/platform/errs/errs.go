package errs

import (
	"errors"
	"fmt"
)

// Kind categorizes application errors for HTTP status mapping.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates the request was malformed (HTTP 400).
	InvalidInput
	// Unreachable indicates an upstream host could not be reached or
	// answered with an error status (HTTP 502).
	Unreachable
	// Timeout indicates an upstream host took too long to respond (HTTP 504).
	Timeout
	// ParsingFailed indicates an upstream response could not be used (HTTP 500).
	ParsingFailed
	// Unavailable indicates a dependency is not configured (HTTP 503).
	Unavailable
)

var kindNames = map[Kind]string{
	Unknown:       "unknown",
	InvalidInput:  "invalid_input",
	Unreachable:   "unreachable",
	Timeout:       "timeout",
	ParsingFailed: "parsing_failed",
	Unavailable:   "unavailable",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the upstream host
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// KindOf returns the Kind of the first AppError in err's chain, or Unknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}
