package models

// Service is a bookable offering configured by the tenant. The engine treats
// it as read-only reference data.
type Service struct {
	ID              string `json:"id" bson:"id"`
	Name            string `json:"name" bson:"name"`
	PriceMinorUnits int64  `json:"priceMinorUnits" bson:"priceMinorUnits"`
	DurationMinutes int    `json:"durationMinutes" bson:"durationMinutes"`
	Active          bool   `json:"active" bson:"active"`
}
