package models

import "time"

// BookingConfirmedEvent is emitted exactly once per won reservation. The
// worker consumes it to persist the appointment and trigger downstream
// notifications; the engine itself never touches durable appointment state.
type BookingConfirmedEvent struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenantId"`
	ServiceID      string    `json:"serviceId"`
	SlotID         string    `json:"slotId"`
	StartAt        time.Time `json:"startAt"`
	EndUserAddress string    `json:"endUserAddress"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Appointment is the durable record written by the event worker.
type Appointment struct {
	ID             string    `json:"id" bson:"id"`
	TenantID       string    `json:"tenantId" bson:"tenantId"`
	ServiceID      string    `json:"serviceId" bson:"serviceId"`
	SlotID         string    `json:"slotId" bson:"slotId"`
	StartAt        time.Time `json:"startAt" bson:"startAt"`
	EndUserAddress string    `json:"endUserAddress" bson:"endUserAddress"`
	Status         string    `json:"status" bson:"status"` // "confirmed", "cancelled"
	Source         string    `json:"source" bson:"source"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// EngineReply is what one processed inbound message produces: the reply text,
// the session state it left behind, and the confirmed-booking event if the
// message won a reservation.
type EngineReply struct {
	Reply string                 `json:"reply"`
	State DialogueState          `json:"state"`
	Event *BookingConfirmedEvent `json:"event,omitempty"`
}
