package models

import "time"

// Slot is a single offerable appointment start time. Slots are never stored;
// they are regenerated on demand, so the ID must be derived deterministically
// from the start instant.
type Slot struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	StartAt time.Time `json:"startAt"`
}
