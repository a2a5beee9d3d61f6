package http

import (
	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/ports"
)

// MessageResponse is a simple status message payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ProductListResponse wraps a product listing
type ProductListResponse struct {
	Products []entities.Product `json:"products"`
}

// ProductResponse wraps a single product
type ProductResponse struct {
	Product *entities.Product `json:"product"`
}

// OrderResponse wraps a single order
type OrderResponse struct {
	Order *entities.Order `json:"order"`
}

// OrderListResponse wraps the admin order listing with joined products
type OrderListResponse struct {
	Orders []ports.OrderWithProduct `json:"orders"`
}

// UpdateOrderStatusRequest carries the target status for an order
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
