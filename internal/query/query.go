// Package query implements the stateless query side of the chat engine:
// date-ranged summaries and "when did I last spend on X" lookups over the
// ledger.
package query

import (
	"time"

	"kharcha/internal/ledger"
)

// Engine answers summary and last-spend queries. It only ever reads the
// ledger; a ledger read failure propagates to the transport layer.
type Engine struct {
	reader ledger.Reader
	now    func() time.Time
}

func New(reader ledger.Reader, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{reader: reader, now: now}
}
