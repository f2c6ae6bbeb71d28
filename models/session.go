package models

import "time"

// DialogueState identifies where a conversation currently sits in the
// booking flow.
type DialogueState string

const (
	StateHome           DialogueState = "HOME"
	StateChooseService  DialogueState = "CHOOSE_SERVICE"
	StateChooseSlot     DialogueState = "CHOOSE_SLOT"
	StateConfirm        DialogueState = "CONFIRM"
	StateCancelFlow     DialogueState = "CANCEL_FLOW"
	StateMyAppointments DialogueState = "MY_APPOINTMENTS"
)

// HistoryLimit bounds the number of messages kept on a session.
const HistoryLimit = 10

// Message is one turn of the conversation, kept for AI fallback context.
type Message struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Selection holds the in-flight booking choices of a session. OfferedSlots
// pins the exact list shown to the user so a later numeric reply maps back
// to the same slot even if the catalog would now derive a different list.
type Selection struct {
	ServiceID    string `json:"serviceId,omitempty"`
	SlotID       string `json:"slotId,omitempty"`
	OfferedSlots []Slot `json:"offeredSlots,omitempty"`
}

// Session is the per-conversation dialogue state. It is owned exclusively by
// the conversation key (tenant, end-user address), mutated only by the state
// machine, and expires after an inactivity TTL. It is not authoritative for
// booking safety.
type Session struct {
	TenantID       string        `json:"tenantId"`
	EndUserAddress string        `json:"endUserAddress"`
	State          DialogueState `json:"state"`
	Selection      Selection     `json:"selection"`
	History        []Message     `json:"history,omitempty"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// NewSession returns a fresh session at the initial state.
func NewSession(tenantID, endUserAddress string) *Session {
	return &Session{
		TenantID:       tenantID,
		EndUserAddress: endUserAddress,
		State:          StateHome,
		UpdatedAt:      time.Now(),
	}
}

// ClearSelection drops any in-flight booking choices.
func (s *Session) ClearSelection() {
	s.Selection = Selection{}
}

// PushHistory appends a message, dropping the oldest entries beyond the bound.
func (s *Session) PushHistory(role, content string) {
	s.History = append(s.History, Message{Role: role, Content: content, At: time.Now()})
	if len(s.History) > HistoryLimit {
		s.History = s.History[len(s.History)-HistoryLimit:]
	}
}
