package intelligence

import (
	"context"
	"strings"

	"turnero/models"
)

// HeuristicRouter is a keyword-rule router used when no model API key is
// configured, and as the deterministic double in tests. Keyword sets cover
// the phrasings seen in real traffic (Spanish, Portuguese, English).
type HeuristicRouter struct{}

func NewHeuristicRouter() *HeuristicRouter {
	return &HeuristicRouter{}
}

var (
	priceWords        = []string{"precio", "costo", "price", "cost", "preço", "quanto", "cuanto"}
	cancelWords       = []string{"cancel", "reprogramar", "reschedule"}
	bookingWords      = []string{"reservar", "turno", "cita", "book", "agendar", "appointment", "horario"}
	confirmationWords = []string{"si", "sí", "yes", "sim", "ok", "confirmar", "dale"}
	handoffWords      = []string{"humano", "human", "persona", "agent", "atendente"}
)

func (r *HeuristicRouter) Route(_ context.Context, req models.RouteRequest) (*models.RouteResult, error) {
	lower := strings.ToLower(strings.TrimSpace(req.Text))

	if containsAny(lower, priceWords) {
		return &models.RouteResult{
			Intent: models.IntentPrices,
			Reply:  "Here are our prices:",
		}, nil
	}

	if containsAny(lower, cancelWords) {
		return &models.RouteResult{
			Intent: models.IntentCancellation,
			Reply:  "Let's cancel your appointment.",
		}, nil
	}

	if containsAny(lower, handoffWords) {
		return &models.RouteResult{
			Intent: models.IntentHandoff,
			Reply:  "A human will get back to you shortly. Leave your question here.",
		}, nil
	}

	// A mentioned service name is the strongest booking signal.
	if name, ok := matchService(lower, req.Services); ok {
		return &models.RouteResult{
			Intent:   models.IntentBooking,
			Reply:    "Starting your booking.",
			Entities: models.RouteEntities{ServiceName: name},
		}, nil
	}

	if containsAny(lower, bookingWords) {
		return &models.RouteResult{
			Intent: models.IntentBooking,
			Reply:  "Starting your booking.",
		}, nil
	}

	if containsAny(lower, confirmationWords) {
		return &models.RouteResult{
			Intent: models.IntentConfirmation,
			Reply:  "Got it.",
		}, nil
	}

	return &models.RouteResult{
		Intent: models.IntentOther,
		Reply:  "Sorry, I didn't understand that.",
	}, nil
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// matchService looks for a service name (or any word of it longer than three
// characters) inside the text.
func matchService(text string, services []models.Service) (string, bool) {
	for _, s := range services {
		name := strings.ToLower(s.Name)
		if strings.Contains(text, name) {
			return s.Name, true
		}
		for _, word := range strings.Fields(name) {
			if len(word) > 3 && strings.Contains(text, word) {
				return s.Name, true
			}
		}
	}
	return "", false
}
