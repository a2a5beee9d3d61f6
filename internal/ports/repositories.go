package ports

import (
	"context"

	"github.com/flexmobile/shop/internal/domain/entities"
)

// ProductRepository defines the interface for product collection operations
type ProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) error
	SoftDelete(ctx context.Context, id string) (*entities.Product, error)
}

// OrderRepository defines the interface for order collection operations
type OrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Create(ctx context.Context, order *entities.Order) error
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (*entities.Order, error)
}

// UserRepository defines the interface for user collection operations
type UserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
}

// ConfigRepository defines the interface for the site configuration document.
// Get reads fresh from the store on every call so an access-code rotation
// takes effect immediately.
type ConfigRepository interface {
	Get(ctx context.Context) (*entities.SiteConfig, error)
	Save(ctx context.Context, cfg *entities.SiteConfig) error
}
