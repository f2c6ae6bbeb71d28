package session

import (
	"context"
	"sync"
	"time"

	"turnero/models"
)

// MemoryStore is the single-process implementation, used in tests and as a
// local fallback. TTL expiry is checked lazily on Load.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*models.Session
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, tenantID, endUserAddress string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionKey(tenantID, endUserAddress)
	sess, ok := s.sessions[key]
	if !ok || s.now().Sub(sess.UpdatedAt) > s.ttl {
		delete(s.sessions, key)
		return models.NewSession(tenantID, endUserAddress), nil
	}
	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.UpdatedAt = s.now()
	copied := *sess
	s.sessions[sessionKey(sess.TenantID, sess.EndUserAddress)] = &copied
	return nil
}
