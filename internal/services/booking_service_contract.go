package services

import (
	"context"

	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/domain/entities"
)

// BookingServiceContract books and lists appointments.
type BookingServiceContract interface {
	Book(ctx context.Context, req dtos.BookAppointmentRequest) (*entities.Appointment, error)
	// List returns every appointment in booking order.
	List(ctx context.Context) ([]entities.Appointment, error)
	ListForPatient(ctx context.Context, email string) ([]entities.Appointment, error)
	// Find returns domain.ErrAppointmentNotFound when nothing matches.
	Find(ctx context.Context, ref dtos.AppointmentRefRequest) (*entities.Appointment, error)
	// Cancel removes the appointment a patient booked at bookedAt. Nothing in
	// the booking flow itself ever removes records; this is an addition for
	// API clients.
	Cancel(ctx context.Context, req dtos.AppointmentRefRequest) error
}
