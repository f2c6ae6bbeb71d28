// Package session persists per-conversation dialogue state with an
// inactivity TTL. Callers always load-mutate-save the whole session value;
// last-write-wins is the accepted policy for the rare concurrent-delivery
// case, because booking safety is enforced by the reservation store, not
// here.
package session

import (
	"context"

	"turnero/models"
)

// Store keys sessions by (tenant, end-user address).
type Store interface {
	// Load returns the current session, or a fresh one at the initial state
	// when none exists or the previous one expired.
	Load(ctx context.Context, tenantID, endUserAddress string) (*models.Session, error)

	// Save writes the whole session value and refreshes its TTL.
	Save(ctx context.Context, sess *models.Session) error
}
