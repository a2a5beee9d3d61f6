package ports

import (
	"context"

	"github.com/flexmobile/shop/internal/domain/entities"
)

// CatalogService interface for product catalog operations
type CatalogService interface {
	ListPublic(ctx context.Context, filter ProductFilter) ([]entities.Product, error)
	ListAdmin(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (*entities.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OrderService interface for order operations
type OrderService interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*entities.Order, error)
	ListOrders(ctx context.Context) ([]OrderWithProduct, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (*entities.Order, error)
}

// AuthService interface for admin authentication operations
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, userID string)
	CreateUser(ctx context.Context, req CreateUserRequest) (*entities.User, error)
}

// PasswordHasher is the opaque credential-hashing capability. The core
// never inspects digests, it only asks for verification.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// SessionManager is the opaque authenticated-session capability. Issue
// binds a session token to a user id; Verify resolves a token back to
// the bound user id or fails. Expiry is the manager's concern.
type SessionManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// Request/Response Types

// ProductFilter narrows and orders public product listings. Filtering
// and sorting are presentation concerns applied after the collection
// is read; the store itself keeps append order.
type ProductFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string // price_asc, price_desc, newest
}

type CreateProductRequest struct {
	Category        string   `json:"category" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Images          []string `json:"images" validate:"required,min=1,dive,required"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountPercent float64  `json:"discountPercent" validate:"gte=0,lte=100"`
	Description     string   `json:"description"`
}

type PlaceOrderRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
}

// OrderWithProduct joins an order to its product at read time. Product
// is nil when the reference dangles (the product record disappeared).
type OrderWithProduct struct {
	entities.Order
	Product *entities.Product `json:"product"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
