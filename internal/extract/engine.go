// Package extract turns syllabus documents into dated task records.
//
// Two pipelines share the same building blocks (date resolution, type
// classification, title normalization, dedupe): FromText scans
// line-oriented plain text, FromHTML walks schedule tables in an HTML
// rendering of the document. Both are pure per call — no state is kept
// between invocations, so a single Engine is safe for concurrent use.
package extract

import (
	"fmt"
	"time"

	"syllabus-sync/pkg/dateparse"
)

// Engine holds the timezone-bound date resolver and the clock used for
// back-filling missing year fields.
type Engine struct {
	parser *dateparse.Parser
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the reference clock. Tests pass a fixed clock so
// year back-fill is deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine for the given IANA timezone.
func New(timezone string, opts ...Option) (*Engine, error) {
	parser, err := dateparse.NewParser(timezone)
	if err != nil {
		return nil, fmt.Errorf("create date parser: %w", err)
	}

	e := &Engine{parser: parser, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}
