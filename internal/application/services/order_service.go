package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/ports"
)

// OrderService handles cash-on-delivery order operations
type OrderService struct {
	orderRepo   ports.OrderRepository
	productRepo ports.ProductRepository
	logger      *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo ports.OrderRepository, productRepo ports.ProductRepository, logger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// PlaceOrder validates and persists a new pending order. The
// referenced product must exist and not be soft-deleted at placement
// time; the reference is not re-validated afterwards, so an order
// survives a later product deletion.
func (s *OrderService) PlaceOrder(ctx context.Context, req ports.PlaceOrderRequest) (*entities.Order, error) {
	if strings.TrimSpace(req.ProductID) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("productId, phone and address are required")
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted() {
		return nil, entities.ErrProductDeleted
	}

	order := &entities.Order{
		ProductID: product.ID,
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		Status:    entities.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Infow("Order placed", "order_id", order.ID, "product_id", order.ProductID)
	return order, nil
}

// ListOrders returns all orders joined with their products. A dangling
// product reference resolves to a nil product, not an error.
func (s *OrderService) ListOrders(ctx context.Context) ([]ports.OrderWithProduct, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	joined := make([]ports.OrderWithProduct, 0, len(orders))
	for _, o := range orders {
		joined = append(joined, ports.OrderWithProduct{
			Order:   o,
			Product: byID[o.ProductID],
		})
	}
	return joined, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Enum and
// transition checks happen in the repository before anything is
// written.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (*entities.Order, error) {
	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidStatus) || errors.Is(err, entities.ErrInvalidTransition) {
			s.logger.Warnw("Rejected order status update", "order_id", id, "status", status, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("Order status updated", "order_id", order.ID, "status", order.Status)
	return order, nil
}
