package tasks

import (
	"encoding/json"

	"turnero/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// NewBookingConfirmedTask wraps a confirmed-booking event for the queue.
func NewBookingConfirmedTask(event models.BookingConfirmedEvent) (*asynq.Task, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmed, b), nil
}
