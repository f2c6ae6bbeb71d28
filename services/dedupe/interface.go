// Package dedupe is the idempotency guard for redelivered inbound messages.
// Messaging providers retry webhooks with at-least-once semantics; the guard
// keeps a short-TTL record per message ID so the engine runs at most once per
// delivery.
package dedupe

import "context"

// Guard atomically records message IDs. The TTL must exceed the provider's
// maximum redelivery window.
type Guard interface {
	// MarkSeen checks-and-inserts the message ID. alreadySeen true means the
	// caller must not re-run the engine and should replay the previous
	// acknowledgment. On an error the transport boundary fails open.
	MarkSeen(ctx context.Context, messageID string) (alreadySeen bool, err error)
}
