package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/store"
	"github.com/flexmobile/shop/internal/ports"
)

// UsersCollection is the store collection name for users
const UsersCollection = "users"

// UserRepositoryImpl implements the UserRepository interface on top of
// the durable record store. The user collection is read-only outside
// of bootstrap and the user-create CLI.
type UserRepositoryImpl struct {
	store *store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(st *store.Store) ports.UserRepository {
	return &UserRepositoryImpl{store: st}
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]entities.User, error) {
	users := []entities.User{}
	if err := r.store.Load(UsersCollection, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByEmail looks a user up by email, case-insensitively
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()

	_, err := store.Update(r.store, UsersCollection, []entities.User{},
		func(users []entities.User) ([]entities.User, error) {
			for i := range users {
				if strings.EqualFold(users[i].Email, user.Email) {
					return nil, entities.ErrEmailTaken
				}
			}
			return append(users, *user), nil
		})
	if err != nil {
		if err == entities.ErrEmailTaken {
			return err
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
