package events

import (
	"context"
	"sync"

	"turnero/models"
)

// MemoryPublisher collects events in memory. Used in tests and when no queue
// is configured.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []models.BookingConfirmedEvent
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Publish(_ context.Context, event models.BookingConfirmedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything published so far.
func (p *MemoryPublisher) Events() []models.BookingConfirmedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.BookingConfirmedEvent, len(p.events))
	copy(out, p.events)
	return out
}
