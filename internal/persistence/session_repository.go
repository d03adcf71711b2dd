package persistence

import (
	"context"
	"fmt"

	"medical-appointment-service/internal/adapters/kvstore"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
)

var _ repositories.SessionRepositoryContract = (*SessionRepository)(nil)

// SessionRepository stores the logged-in user under "loggedInUser".
type SessionRepository struct {
	store kvstore.KeyValueStore
}

func NewSessionRepository(store kvstore.KeyValueStore) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) GetLoggedIn(ctx context.Context, namespace string) (*entities.User, error) {
	var user entities.User
	found, err := loadJSON(ctx, r.store, NamespacedKey(namespace, KeyLoggedInUser), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *SessionRepository) SetLoggedIn(ctx context.Context, namespace string, user entities.User) error {
	return saveJSON(ctx, r.store, NamespacedKey(namespace, KeyLoggedInUser), user)
}

func (r *SessionRepository) ClearLoggedIn(ctx context.Context, namespace string) error {
	key := NamespacedKey(namespace, KeyLoggedInUser)
	if err := r.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}
