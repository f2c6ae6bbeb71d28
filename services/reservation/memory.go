package reservation

import (
	"context"
	"sync"
)

// MemoryStore is the single-process fallback and test implementation. The
// mutex covers the whole check-and-insert so the TryReserve guarantee holds.
type MemoryStore struct {
	mu     sync.Mutex
	booked map[string]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{booked: make(map[string]map[string]struct{})}
}

func (s *MemoryStore) IsAvailable(_ context.Context, tenantID, slotID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.booked[tenantID][slotID]
	return !ok, nil
}

func (s *MemoryStore) TryReserve(_ context.Context, tenantID, slotID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.booked[tenantID]
	if !ok {
		set = make(map[string]struct{})
		s.booked[tenantID] = set
	}
	if _, exists := set[slotID]; exists {
		return false, nil
	}
	set[slotID] = struct{}{}
	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, tenantID, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.booked[tenantID], slotID)
	return nil
}
