// Package appointmentRepo persists confirmed appointments. Writes come from
// the booking-confirmed event worker, never from the engine directly.
package appointmentRepo

import "turnero/models"

type AppointmentRepository interface {
	Insert(appt models.Appointment) error
	ListByTenant(tenantID string, limit int64) ([]models.Appointment, error)
	UpdateStatus(id, status string) error
}
