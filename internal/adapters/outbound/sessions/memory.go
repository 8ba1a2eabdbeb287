package sessions

import (
	"context"
	"slices"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps sessions in a size bounded LRU. Entries expire after the
// configured TTL without activity.
type MemoryStore struct {
	cache *expirable.LRU[string, domain.Session]
}

// NewMemoryStore creates a MemoryStore holding at most maxSessions sessions.
func NewMemoryStore(maxSessions int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: expirable.NewLRU[string, domain.Session](maxSessions, nil, ttl),
	}
}

// GetSession returns a copy of the stored session.
func (m *MemoryStore) GetSession(_ context.Context, id string) (domain.Session, bool, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return domain.Session{}, false, nil
	}
	return cloneSession(s), true, nil
}

// SaveSession stores a copy of the session and refreshes its TTL.
func (m *MemoryStore) SaveSession(_ context.Context, session domain.Session) error {
	m.cache.Add(session.ID, cloneSession(session))
	return nil
}

// DeleteSession removes a session.
func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

// CountSessions returns the number of live sessions.
func (m *MemoryStore) CountSessions(_ context.Context) (int, error) {
	return m.cache.Len(), nil
}

// DeleteIdleSessions removes the sessions last updated before the given time.
func (m *MemoryStore) DeleteIdleSessions(_ context.Context, before time.Time) (int64, error) {
	var deleted int64
	for _, id := range m.cache.Keys() {
		s, ok := m.cache.Peek(id)
		if ok && s.UpdatedAt.Before(before) && m.cache.Remove(id) {
			deleted++
		}
	}
	return deleted, nil
}

// cloneSession copies the slices so callers never share backing arrays with the cache.
func cloneSession(s domain.Session) domain.Session {
	s.History = slices.Clone(s.History)
	s.Bookings = slices.Clone(s.Bookings)
	return s
}
