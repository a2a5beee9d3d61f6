package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/store"
	"github.com/flexmobile/shop/internal/ports"
)

// OrdersCollection is the store collection name for orders
const OrdersCollection = "orders"

// OrderRepositoryImpl implements the OrderRepository interface on top
// of the durable record store
type OrderRepositoryImpl struct {
	store *store.Store
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(st *store.Store) ports.OrderRepository {
	return &OrderRepositoryImpl{store: st}
}

func (r *OrderRepositoryImpl) List(ctx context.Context) ([]entities.Order, error) {
	orders := []entities.Order{}
	if err := r.store.Load(OrdersCollection, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, entities.ErrOrderNotFound
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := store.Update(r.store, OrdersCollection, []entities.Order{},
		func(orders []entities.Order) ([]entities.Order, error) {
			return append(orders, *order), nil
		})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// UpdateStatus moves an order to a new status. The target is checked
// against the status enum before the store is touched, and against the
// transition table once the current record is in hand; a rejected
// transition writes nothing.
func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (*entities.Order, error) {
	if !status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}

	var updated entities.Order

	_, err := store.Update(r.store, OrdersCollection, []entities.Order{},
		func(orders []entities.Order) ([]entities.Order, error) {
			for i := range orders {
				if orders[i].ID != id {
					continue
				}
				if !orders[i].Status.CanTransition(status) {
					return nil, fmt.Errorf("%w: %s -> %s",
						entities.ErrInvalidTransition, orders[i].Status, status)
				}
				orders[i].Status = status
				orders[i].UpdatedAt = time.Now().UTC()
				updated = orders[i]
				return orders, nil
			}
			return nil, entities.ErrOrderNotFound
		})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
