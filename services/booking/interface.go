package booking

import (
	"context"
	"time"

	"turnero/models"
	"turnero/services/events"
	"turnero/services/intelligence"
	"turnero/services/reservation"
	"turnero/services/session"
)

// Engine turns one inbound chat message into a dialogue-state transition and
// a reply, committing a reservation at most once per slot.
type Engine interface {
	Process(ctx context.Context, tenant *models.Tenant, endUserAddress, text string) (*models.EngineReply, error)
}

// EngineConfig carries the global slot-generation defaults; tenants may
// override them per BookingConfig.
type EngineConfig struct {
	HorizonDays  int
	Hours        []int
	OfferCount   int
	StoreTimeout time.Duration
	AITimeout    time.Duration
}

// DefaultEngine wires the deterministic state machine to the stores and the
// AI fallback router.
type DefaultEngine struct {
	Sessions     session.Store
	Reservations reservation.Store
	AI           intelligence.Router
	Events       events.Publisher
	Config       EngineConfig

	// Now is the clock used for slot generation; overridable in tests.
	Now func() time.Time
}

func NewEngine(
	sessions session.Store,
	reservations reservation.Store,
	ai intelligence.Router,
	publisher events.Publisher,
	cfg EngineConfig,
) *DefaultEngine {
	return &DefaultEngine{
		Sessions:     sessions,
		Reservations: reservations,
		AI:           ai,
		Events:       publisher,
		Config:       cfg,
		Now:          time.Now,
	}
}

func (e *DefaultEngine) horizonDays(t *models.Tenant) int {
	if t.Booking.HorizonDays > 0 {
		return t.Booking.HorizonDays
	}
	return e.Config.HorizonDays
}

func (e *DefaultEngine) hours(t *models.Tenant) []int {
	if len(t.Booking.Hours) > 0 {
		return t.Booking.Hours
	}
	return e.Config.Hours
}

func (e *DefaultEngine) offerCount(t *models.Tenant) int {
	if t.Booking.OfferCount > 0 {
		return t.Booking.OfferCount
	}
	return e.Config.OfferCount
}
