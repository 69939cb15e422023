package division

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat aborts a build: the meta line is missing or unusable
	ErrFormat = errors.New("invalid lyrics format")
	// ErrMalformedLine marks a lyric line that is skipped
	ErrMalformedLine = errors.New("malformed lyrics line")
	// ErrDegenerateRotation is returned when fewer than two performers are available
	ErrDegenerateRotation = errors.New("rotation needs at least 2 performers")
)

// DiagnosticKind classifies a recoverable problem found while building
type DiagnosticKind string

const (
	DiagMissingKey     DiagnosticKind = "missing_key"
	DiagMalformedLine  DiagnosticKind = "malformed_line"
	DiagDuplicateColor DiagnosticKind = "duplicate_color"
)

// Diagnostic records a recoverable problem. Line is 1-based, 0 when not tied to a line.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Line    int            `json:"line"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s (line %d): %s", d.Kind, d.Line, d.Message)
}
