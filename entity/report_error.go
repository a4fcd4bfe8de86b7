package entity

import "time"

// ErrorKind classifies a report error so the caller can render a
// remediation hint instead of a raw failure.
type ErrorKind string

const (
	ErrorKindEnv        ErrorKind = "env"
	ErrorKindNetwork    ErrorKind = "network"
	ErrorKindAuth       ErrorKind = "auth"
	ErrorKindRls        ErrorKind = "rls"
	ErrorKindService    ErrorKind = "service"
	ErrorKindUnknown    ErrorKind = "unknown"
	ErrorKindValidation ErrorKind = "validation"
)

type ReportError struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Hint       string    `json:"hint,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
