package utils

import "github.com/google/uuid"

// TraceIDGenerator produces identifiers for inbound requests that arrive
// without an X-Trace-ID header.
type TraceIDGenerator struct{}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4
// when the clock source fails.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
