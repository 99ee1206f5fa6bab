package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/persistence"
)

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether any account already holds
	// the given username or email. Uniqueness is joint across both fields.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type userRepository struct {
	mu    sync.Mutex
	store persistence.Store
}

// NewUserRepository returns a substrate-backed implementation.
func NewUserRepository(store persistence.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := loadCollection[domain.User](ctx, r.store, persistence.KeyUsers)
	if err != nil {
		return err
	}
	users = append(users, user)
	return saveCollection(ctx, r.store, persistence.KeyUsers, users)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := loadCollection[domain.User](ctx, r.store, persistence.KeyUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	users, err := loadCollection[domain.User](ctx, r.store, persistence.KeyUsers)
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].Email == email || users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}
