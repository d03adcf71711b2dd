package repositories

import (
	"context"

	"medical-appointment-service/internal/domain/entities"
)

// UserRepositoryContract stores the ordered list of verified users.
type UserRepositoryContract interface {
	ListAll(ctx context.Context) ([]entities.User, error)
	// FindByEmail returns nil, nil when no user has exactly this email.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Append(ctx context.Context, user entities.User) error
}
