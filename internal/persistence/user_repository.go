package persistence

import (
	"context"

	"medical-appointment-service/internal/adapters/kvstore"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
)

var _ repositories.UserRepositoryContract = (*UserRepository)(nil)

// UserRepository keeps every user in one JSON array under "users".
type UserRepository struct {
	store kvstore.KeyValueStore
}

func NewUserRepository(store kvstore.KeyValueStore) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) ListAll(ctx context.Context) ([]entities.User, error) {
	users := []entities.User{}
	if _, err := loadJSON(ctx, r.store, KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail matches the email exactly, case included.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	users, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Append(ctx context.Context, user entities.User) error {
	users, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	return saveJSON(ctx, r.store, KeyUsers, append(users, user))
}
