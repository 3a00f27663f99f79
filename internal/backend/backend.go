// Package backend selects and constructs the ledger implementation from
// configuration.
package backend

import (
	"kharcha/internal/ledger"
)

// Backend is the full ledger surface the chat and query engines need.
type Backend interface {
	ledger.Reader
	ledger.Writer
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the backend instance and its cleanup function.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Type identifies a ledger backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
