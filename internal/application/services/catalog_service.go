package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/ports"
)

// CatalogService handles product catalog operations
type CatalogService struct {
	productRepo ports.ProductRepository
	logger      *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo ports.ProductRepository, logger *logger.Logger) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListPublic returns products visible to storefront visitors:
// soft-deleted products are excluded, then the filter and sort are
// applied in memory on top of the collection's append order.
func (s *CatalogService) ListPublic(ctx context.Context, filter ports.ProductFilter) ([]entities.Product, error) {
	all, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if p.IsDeleted() {
			continue
		}
		if !matchesFilter(&p, filter) {
			continue
		}
		products = append(products, p)
	}

	applySort(products, filter.Sort)
	return products, nil
}

// ListAdmin returns the full collection, soft-deleted products included
func (s *CatalogService) ListAdmin(ctx context.Context) ([]entities.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct returns a product by id, deleted or not
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct validates and persists a new product. Images beyond
// the cap are silently dropped; a missing discount defaults to zero.
func (s *CatalogService) CreateProduct(ctx context.Context, req ports.CreateProductRequest) (*entities.Product, error) {
	category := strings.TrimSpace(req.Category)
	name := strings.TrimSpace(req.Name)

	if category == "" || name == "" {
		return nil, fmt.Errorf("category and name are required")
	}
	if len(req.Images) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("discount percent must be between 0 and 100")
	}

	images := req.Images
	if len(images) > entities.MaxProductImages {
		images = images[:entities.MaxProductImages]
	}

	product := &entities.Product{
		Category:        category,
		Name:            name,
		Images:          images,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Description:     strings.TrimSpace(req.Description),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Infow("Product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// DeleteProduct soft-deletes a product. Historical orders keep
// resolving to it; public listings stop showing it.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Infow("Product deleted", "product_id", product.ID, "name", product.Name)
	return nil
}

func matchesFilter(p *entities.Product, filter ports.ProductFilter) bool {
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	return true
}

func applySort(products []entities.Product, key string) {
	switch key {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "newest":
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}
