package chat

import (
	"sync"
	"time"

	"kharcha/internal/core"
)

// Mode is the dialogue state of one conversation.
type Mode int

const (
	ModeNone Mode = iota
	ModeAdd
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeConfirm:
		return "confirm"
	default:
		return "none"
	}
}

// Session is the mutable dialogue state for one conversation. Zero values
// mean an unfilled slot: slots fill monotonically while in ModeAdd and are
// all cleared together on save, cancel or a fresh add trigger.
type Session struct {
	mu sync.Mutex

	Mode     Mode
	Amount   int64
	Category string
	Date     core.Date
	Details  string

	LastActive time.Time
}

func (s *Session) reset() {
	s.Mode = ModeNone
	s.Amount = 0
	s.Category = ""
	s.Date = core.Date{}
	s.Details = ""
}

// complete reports whether all four slots are filled.
func (s *Session) complete() bool {
	return s.Amount > 0 && s.Category != "" && !s.Date.IsZero() && s.Details != ""
}

// Store keeps one Session per conversation ID. Sessions are created on first
// use and swept after sitting idle.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it in ModeNone if needed.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		s = &Session{}
		st.sessions[id] = s
	}
	return s
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// SweepIdle drops sessions whose last activity is older than the cutoff. A
// partially filled dialogue abandoned mid-way disappears instead of holding
// its slots forever.
func (st *Store) SweepIdle(idle time.Duration, now time.Time) int {
	cutoff := now.Add(-idle)

	// Session locks are never taken while holding the store lock: a
	// conversation stuck in a slow save must not stall Get for everyone.
	st.mu.Lock()
	candidates := make(map[string]*Session, len(st.sessions))
	for id, s := range st.sessions {
		candidates[id] = s
	}
	st.mu.Unlock()

	removed := 0
	for id, s := range candidates {
		s.mu.Lock()
		stale := s.LastActive.Before(cutoff)
		s.mu.Unlock()
		if !stale {
			continue
		}
		st.mu.Lock()
		if cur, ok := st.sessions[id]; ok && cur == s {
			delete(st.sessions, id)
			removed++
		}
		st.mu.Unlock()
	}
	return removed
}

// RunSweeper sweeps idle sessions on a ticker until ctx is done.
func (st *Store) RunSweeper(done <-chan struct{}, idle, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.SweepIdle(idle, time.Now())
		case <-done:
			return
		}
	}
}
