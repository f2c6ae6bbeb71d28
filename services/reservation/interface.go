// Package reservation holds the tenant-scoped set of already-booked slot
// identifiers. TryReserve is the single authoritative linearization point for
// booking conflicts; everything else in the engine is advisory.
package reservation

import "context"

// Store is the atomic add-if-absent set of (tenant, slot) reservations.
// Exactly one backing store is authoritative per deployment; implementations
// are never mixed within a single reservation attempt.
type Store interface {
	// IsAvailable reports whether the slot looks free. Best-effort only;
	// concurrent callers must still go through TryReserve.
	IsAvailable(ctx context.Context, tenantID, slotID string) (bool, error)

	// TryReserve atomically adds the (tenant, slot) pair if absent. It
	// returns true iff this call performed the insertion — under N
	// concurrent calls for the same pair, exactly one caller wins.
	TryReserve(ctx context.Context, tenantID, slotID string) (bool, error)

	// Release removes the pair. Used by cancellation flows.
	Release(ctx context.Context, tenantID, slotID string) error
}
