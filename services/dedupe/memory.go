package dedupe

import (
	"context"
	"sync"
	"time"
)

// MemoryGuard is the single-process implementation used in tests.
type MemoryGuard struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
	now  func() time.Time
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	return &MemoryGuard{
		ttl:  ttl,
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (g *MemoryGuard) MarkSeen(_ context.Context, messageID string) (bool, error) {
	if messageID == "" {
		return false, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if at, ok := g.seen[messageID]; ok && g.now().Sub(at) < g.ttl {
		return true, nil
	}
	g.seen[messageID] = g.now()
	return false, nil
}
