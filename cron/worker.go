package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"turnero/config"
	appointmentRepo "turnero/database/repository/appointment"
	"turnero/models"
	"turnero/services/tasks"

	"github.com/hibiken/asynq"
)

// InitBookingWorker runs the async worker that turns booking-confirmed events
// into durable appointment records.
func InitBookingWorker(repo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleBookingConfirmed(repo))

	// Start async worker with retry logic.
	go func() {
		log.Println("[BookingWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingConfirmed(repo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var event models.BookingConfirmedEvent
		if err := json.Unmarshal(task.Payload(), &event); err != nil {
			log.Printf("[BookingWorker] Invalid payload: %v", err)
			return err
		}

		appt := models.Appointment{
			ID:             event.ID,
			TenantID:       event.TenantID,
			ServiceID:      event.ServiceID,
			SlotID:         event.SlotID,
			StartAt:        event.StartAt,
			EndUserAddress: event.EndUserAddress,
			Status:         "confirmed",
			Source:         "chat_bot",
			CreatedAt:      event.CreatedAt,
		}
		if err := repo.Insert(appt); err != nil {
			// Returning the error lets asynq retry the task.
			log.Printf("[BookingWorker] Failed to persist appointment %s: %v", event.ID, err)
			return err
		}

		log.Printf("[BookingWorker] Appointment %s persisted for tenant %s (%s)",
			event.ID, event.TenantID, event.StartAt.Format(time.RFC3339))
		return nil
	}
}
