package persistence

import (
	"context"
	"fmt"

	"medical-appointment-service/internal/adapters/kvstore"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
)

var _ repositories.PendingSignupRepositoryContract = (*PendingSignupRepository)(nil)

// PendingSignupRepository stores the pending signup under "tempUser".
type PendingSignupRepository struct {
	store kvstore.KeyValueStore
}

func NewPendingSignupRepository(store kvstore.KeyValueStore) *PendingSignupRepository {
	return &PendingSignupRepository{store: store}
}

func (r *PendingSignupRepository) Get(ctx context.Context, namespace string) (*entities.PendingSignup, error) {
	var pending entities.PendingSignup
	found, err := loadJSON(ctx, r.store, NamespacedKey(namespace, KeyTempUser), &pending)
	if err != nil || !found {
		return nil, err
	}
	return &pending, nil
}

func (r *PendingSignupRepository) Save(ctx context.Context, namespace string, pending entities.PendingSignup) error {
	return saveJSON(ctx, r.store, NamespacedKey(namespace, KeyTempUser), pending)
}

func (r *PendingSignupRepository) Clear(ctx context.Context, namespace string) error {
	key := NamespacedKey(namespace, KeyTempUser)
	if err := r.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}
