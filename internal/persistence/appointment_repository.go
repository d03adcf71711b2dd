package persistence

import (
	"context"

	"medical-appointment-service/internal/adapters/kvstore"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
)

var _ repositories.AppointmentRepositoryContract = (*AppointmentRepository)(nil)

// AppointmentRepository keeps bookings, in booking order, under "appointments".
type AppointmentRepository struct {
	store kvstore.KeyValueStore
}

func NewAppointmentRepository(store kvstore.KeyValueStore) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]entities.Appointment, error) {
	appointments := []entities.Appointment{}
	if _, err := loadJSON(ctx, r.store, KeyAppointments, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) Append(ctx context.Context, appointment entities.Appointment) error {
	appointments, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	return saveJSON(ctx, r.store, KeyAppointments, append(appointments, appointment))
}

func (r *AppointmentRepository) ReplaceAll(ctx context.Context, appointments []entities.Appointment) error {
	if appointments == nil {
		appointments = []entities.Appointment{}
	}
	return saveJSON(ctx, r.store, KeyAppointments, appointments)
}
