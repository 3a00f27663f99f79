// Package memory is an in-process ledger backend used for tests and as the
// default when no external store is configured.
package memory

import (
	"context"
	"sync"

	"kharcha/internal/core"
	"kharcha/internal/ledger"
)

type Store struct {
	mu   sync.Mutex
	rows []ledger.Row
}

func New() *Store {
	return &Store{}
}

// Seed pre-loads raw rows, malformed ones included. Tests use it to exercise
// the skip-bad-rows paths.
func (s *Store) Seed(rows ...ledger.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rows...)
}

func (s *Store) ReadAll(_ context.Context) ([]ledger.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ledger.Row, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *Store) Append(_ context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, ledger.RowOf(e))
	return nil
}

var (
	_ ledger.Reader = (*Store)(nil)
	_ ledger.Writer = (*Store)(nil)
)
