package repositories

import (
	"context"

	"medical-appointment-service/internal/domain/entities"
)

// SessionRepositoryContract holds the logged-in user of a session namespace.
type SessionRepositoryContract interface {
	// GetLoggedIn returns nil, nil when nobody is logged in.
	GetLoggedIn(ctx context.Context, namespace string) (*entities.User, error)
	SetLoggedIn(ctx context.Context, namespace string, user entities.User) error
	ClearLoggedIn(ctx context.Context, namespace string) error
}
