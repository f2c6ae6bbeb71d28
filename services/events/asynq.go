package events

import (
	"context"
	"fmt"

	"turnero/models"
	"turnero/services/tasks"

	"github.com/hibiken/asynq"
)

// AsynqPublisher enqueues booking-confirmed events on the Redis-backed queue
// consumed by the cron worker.
type AsynqPublisher struct {
	client *asynq.Client
}

func NewAsynqPublisher(client *asynq.Client) *AsynqPublisher {
	return &AsynqPublisher{client: client}
}

func (p *AsynqPublisher) Publish(ctx context.Context, event models.BookingConfirmedEvent) error {
	task, err := tasks.NewBookingConfirmedTask(event)
	if err != nil {
		return fmt.Errorf("events: build task: %w", err)
	}
	if _, err := p.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("events: enqueue booking %s: %w", event.ID, err)
	}
	return nil
}
