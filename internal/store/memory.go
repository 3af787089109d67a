package store

import (
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/aaronzipp/explorers-mission/internal/metrics"
	"github.com/aaronzipp/explorers-mission/internal/session"
	"github.com/aaronzipp/explorers-mission/internal/sse"
)

// Entry is everything kept for one browser session
type Entry struct {
	Controller *session.Controller
	Stream     *sse.Stream
}

// SessionStore keeps live sessions, bounded in size and idle time.
// Evicted sessions stop their timers and disconnect their SSE clients.
type SessionStore struct {
	sessions *expirable.LRU[string, *Entry]
	log      *slog.Logger
}

// NewSessionStore creates a store holding at most size sessions for ttl after last use
func NewSessionStore(size int, ttl time.Duration, log *slog.Logger) *SessionStore {
	if log == nil {
		log = slog.Default()
	}
	s := &SessionStore{log: log}
	s.sessions = expirable.NewLRU[string, *Entry](size, s.onEvict, ttl)
	return s
}

func (s *SessionStore) onEvict(id string, e *Entry) {
	e.Controller.Close()
	e.Stream.Close()
	metrics.ActiveSessions.Dec()
	s.log.Info("Session evicted", "session_id", id)
}

// Get retrieves a session and refreshes its idle timer
func (s *SessionStore) Get(id string) (*Entry, bool) {
	e, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s.sessions.Add(id, e)
	return e, true
}

// Set stores a session
func (s *SessionStore) Set(id string, e *Entry) {
	if !s.sessions.Contains(id) {
		metrics.ActiveSessions.Inc()
	}
	s.sessions.Add(id, e)
}

// Delete removes a session
func (s *SessionStore) Delete(id string) {
	s.sessions.Remove(id)
}

// Exists checks if a session id is live without refreshing it
func (s *SessionStore) Exists(id string) bool {
	return s.sessions.Contains(id)
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}

// Close evicts every session
func (s *SessionStore) Close() {
	s.sessions.Purge()
}
