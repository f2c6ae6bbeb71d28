package models

// Intent values the AI fallback router may return.
const (
	IntentBooking      = "booking"
	IntentPrices       = "query_prices"
	IntentCancellation = "cancellation"
	IntentConfirmation = "confirmation"
	IntentHandoff      = "handoff"
	IntentOther        = "other"
)

// RouteRequest is the payload handed to the AI fallback router when no
// deterministic rule matches.
type RouteRequest struct {
	Text       string    `json:"text"`
	History    []Message `json:"history,omitempty"`
	TenantName string    `json:"tenantName"`
	Services   []Service `json:"services"`
}

// RouteEntities are the structured values the router extracted from free text.
type RouteEntities struct {
	ServiceName string `json:"serviceName,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	Time        string `json:"time,omitempty"` // HH:mm
	SlotIndex   int    `json:"slotIndex,omitempty"`
}

// RouteResult maps free text to an intent plus a ready-to-send reply. The
// router only suggests transitions; it never mutates booking state itself.
type RouteResult struct {
	Intent   string        `json:"intent"`
	Reply    string        `json:"message"`
	Entities RouteEntities `json:"entities,omitempty"`
}
