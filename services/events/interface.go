// Package events fans confirmed bookings out to the durable side of the
// system. The engine only publishes; persistence, payment links and
// notifications happen in the worker.
package events

import (
	"context"

	"turnero/models"
)

// Publisher hands a booking-confirmed event to the downstream consumer.
type Publisher interface {
	Publish(ctx context.Context, event models.BookingConfirmedEvent) error
}
