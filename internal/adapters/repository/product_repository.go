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

// ProductsCollection is the store collection name for products
const ProductsCollection = "products"

// ProductRepositoryImpl implements the ProductRepository interface on
// top of the durable record store
type ProductRepositoryImpl struct {
	store *store.Store
}

// NewProductRepository creates a new product repository
func NewProductRepository(st *store.Store) ports.ProductRepository {
	return &ProductRepositoryImpl{store: st}
}

func (r *ProductRepositoryImpl) List(ctx context.Context) ([]entities.Product, error) {
	products := []entities.Product{}
	if err := r.store.Load(ProductsCollection, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, entities.ErrProductNotFound
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := store.Update(r.store, ProductsCollection, []entities.Product{},
		func(products []entities.Product) ([]entities.Product, error) {
			return append(products, *product), nil
		})
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// SoftDelete stamps DeletedAt on the product. The stamp is monotonic:
// deleting an already-deleted product keeps the original timestamp.
func (r *ProductRepositoryImpl) SoftDelete(ctx context.Context, id string) (*entities.Product, error) {
	var deleted entities.Product

	_, err := store.Update(r.store, ProductsCollection, []entities.Product{},
		func(products []entities.Product) ([]entities.Product, error) {
			for i := range products {
				if products[i].ID != id {
					continue
				}
				if products[i].DeletedAt == nil {
					now := time.Now().UTC()
					products[i].DeletedAt = &now
					products[i].UpdatedAt = now
				}
				deleted = products[i]
				return products, nil
			}
			return nil, entities.ErrProductNotFound
		})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
