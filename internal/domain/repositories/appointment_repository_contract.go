package repositories

import (
	"context"

	"medical-appointment-service/internal/domain/entities"
)

type AppointmentRepositoryContract interface {
	ListAll(ctx context.Context) ([]entities.Appointment, error)
	Append(ctx context.Context, appointment entities.Appointment) error
	// ReplaceAll writes back the whole list. Only cancellation uses it.
	ReplaceAll(ctx context.Context, appointments []entities.Appointment) error
}
