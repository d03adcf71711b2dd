package services

import (
	"context"

	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/domain/entities"
)

// DoctorServiceContract is the read side of the doctor directory.
type DoctorServiceContract interface {
	List(ctx context.Context) ([]entities.Doctor, error)
	// Get returns domain.ErrDoctorNotFound for unknown ids.
	Get(ctx context.Context, id int) (*entities.Doctor, error)
	Search(ctx context.Context, req dtos.DoctorSearchRequest) ([]entities.Doctor, error)
	// Specialties lists each specialty once, in catalogue order.
	Specialties(ctx context.Context) ([]string, error)
	Slots(ctx context.Context, id int, date string) (dtos.SlotsResponse, error)
}
