package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrProductDeleted    = errors.New("product is no longer available")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrUnauthorized      = errors.New("unauthorized")
)

// MaxProductImages caps the number of images stored per product.
// Extra entries are silently dropped at creation time.
const MaxProductImages = 4

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is one of the known order statuses
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// statusTransitions is the closed set of legal status moves:
// pending -> confirmed -> shipped -> delivered, or pending -> cancelled.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from s to target
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// User represents an administrator account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Product represents a catalog item
type Product struct {
	ID              string     `json:"id"`
	Category        string     `json:"category"`
	Name            string     `json:"name"`
	Images          []string   `json:"images"`
	Price           float64    `json:"price"`
	DiscountPercent float64    `json:"discountPercent"`
	Description     string     `json:"description"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the product has been soft-deleted
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Order represents a cash-on-delivery order for a single product
type Order struct {
	ID        string      `json:"id"`
	ProductID string      `json:"productId"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SiteConfig holds the site-wide settings stored as a single document.
// AdminAccessCode gates visibility of the admin login surface.
type SiteConfig struct {
	AdminAccessCode string `json:"adminAccessCode"`
	SiteName        string `json:"siteName"`
}
