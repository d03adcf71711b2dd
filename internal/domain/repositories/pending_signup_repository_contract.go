package repositories

import (
	"context"

	"medical-appointment-service/internal/domain/entities"
)

// PendingSignupRepositoryContract holds the single pending signup of a
// session namespace.
type PendingSignupRepositoryContract interface {
	// Get returns nil, nil when nothing is pending.
	Get(ctx context.Context, namespace string) (*entities.PendingSignup, error)
	Save(ctx context.Context, namespace string, pending entities.PendingSignup) error
	Clear(ctx context.Context, namespace string) error
}
