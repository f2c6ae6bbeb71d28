// Package intelligence is the AI fallback boundary. The deterministic state
// machine always runs first; only inputs with no matching rule reach a
// Router. Routers map free text to intents and entities — they request state
// transitions but never touch the reservation store.
package intelligence

import (
	"context"

	"turnero/models"
)

// Router resolves free text into an intent plus a ready-to-send reply.
type Router interface {
	Route(ctx context.Context, req models.RouteRequest) (*models.RouteResult, error)
}
