package models

// BookingConfig carries tenant-specific slot generation tuning. Zero values
// fall back to the global defaults from config.
type BookingConfig struct {
	HorizonDays int   `json:"horizonDays" bson:"horizonDays"`
	Hours       []int `json:"hours" bson:"hours"`
	OfferCount  int   `json:"offerCount" bson:"offerCount"`
}

// Tenant is the configuration read model for one business. The engine only
// reads it; provisioning and settings management live elsewhere.
type Tenant struct {
	ID               string        `json:"id" bson:"id"`
	Slug             string        `json:"slug" bson:"slug"`
	Name             string        `json:"name" bson:"name"`
	Services         []Service     `json:"services" bson:"services"`
	Booking          BookingConfig `json:"booking" bson:"booking"`
	ChannelAuthToken string        `json:"-" bson:"channelAuthToken,omitempty"`
}

// ActiveServices filters the tenant's catalog down to bookable entries.
func (t *Tenant) ActiveServices() []Service {
	out := make([]Service, 0, len(t.Services))
	for _, s := range t.Services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// ServiceByID looks up a service in the tenant catalog.
func (t *Tenant) ServiceByID(id string) (Service, bool) {
	for _, s := range t.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
