package repositories

import (
	"context"

	"medical-appointment-service/internal/domain/entities"
)

// DoctorRepositoryContract is the read-only doctor catalogue.
type DoctorRepositoryContract interface {
	ListAll(ctx context.Context) ([]entities.Doctor, error)
	// GetByID returns nil, nil when the id is unknown.
	GetByID(ctx context.Context, id int) (*entities.Doctor, error)
}
