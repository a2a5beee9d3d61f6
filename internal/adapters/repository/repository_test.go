package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/infrastructure/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir(), logger.NewNop())
	require.NoError(t, err)
	return st
}

func createProduct(t *testing.T, repo *ProductRepositoryImpl, name string) *entities.Product {
	t.Helper()
	p := &entities.Product{
		Category: "phones",
		Name:     name,
		Images:   []string{"a.png"},
		Price:    100,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProductCreateAssignsIdentityAndTimestamps(t *testing.T) {
	repo := NewProductRepository(newTestStore(t)).(*ProductRepositoryImpl)

	p := createProduct(t, repo, "X1")
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "X1", got.Name)
}

func TestProductListKeepsAppendOrder(t *testing.T) {
	repo := NewProductRepository(newTestStore(t)).(*ProductRepositoryImpl)

	createProduct(t, repo, "first")
	createProduct(t, repo, "second")
	createProduct(t, repo, "third")

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "first", products[0].Name)
	assert.Equal(t, "third", products[2].Name)
}

func TestProductGetByIDNotFound(t *testing.T) {
	repo := NewProductRepository(newTestStore(t)).(*ProductRepositoryImpl)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestProductSoftDeleteIsMonotonic(t *testing.T) {
	repo := NewProductRepository(newTestStore(t)).(*ProductRepositoryImpl)
	ctx := context.Background()

	p := createProduct(t, repo, "X1")

	first, err := repo.SoftDelete(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, first.DeletedAt)

	// A second delete keeps the original stamp.
	second, err := repo.SoftDelete(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, second.DeletedAt)
	assert.True(t, first.DeletedAt.Equal(*second.DeletedAt))

	// Still resolvable by id after deletion.
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted())
	assert.Equal(t, "X1", got.Name)
}

func TestProductSoftDeleteNotFound(t *testing.T) {
	repo := NewProductRepository(newTestStore(t)).(*ProductRepositoryImpl)

	_, err := repo.SoftDelete(context.Background(), "nope")
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestOrderCreateDefaultsToPending(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t)).(*OrderRepositoryImpl)

	o := &entities.Order{ProductID: "p1", Phone: "123", Address: "somewhere"}
	require.NoError(t, repo.Create(context.Background(), o))

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, entities.OrderStatusPending, o.Status)

	got, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ProductID)
}

func TestOrderUpdateStatusFollowsTransitionTable(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t)).(*OrderRepositoryImpl)
	ctx := context.Background()

	o := &entities.Order{ProductID: "p1", Phone: "123", Address: "somewhere"}
	require.NoError(t, repo.Create(ctx, o))

	for _, status := range []entities.OrderStatus{
		entities.OrderStatusConfirmed,
		entities.OrderStatusShipped,
		entities.OrderStatusDelivered,
	} {
		updated, err := repo.UpdateStatus(ctx, o.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestOrderUpdateStatusRejectsUnknownValueWithoutWriting(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t)).(*OrderRepositoryImpl)
	ctx := context.Background()

	o := &entities.Order{ProductID: "p1", Phone: "123", Address: "somewhere"}
	require.NoError(t, repo.Create(ctx, o))

	_, err := repo.UpdateStatus(ctx, o.ID, entities.OrderStatus("refunded"))
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, got.Status)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestOrderUpdateStatusRejectsIllegalTransition(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t)).(*OrderRepositoryImpl)
	ctx := context.Background()

	o := &entities.Order{ProductID: "p1", Phone: "123", Address: "somewhere"}
	require.NoError(t, repo.Create(ctx, o))

	// pending -> delivered skips confirmed/shipped.
	_, err := repo.UpdateStatus(ctx, o.ID, entities.OrderStatusDelivered)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	// cancelled is terminal.
	_, err = repo.UpdateStatus(ctx, o.ID, entities.OrderStatusCancelled)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, o.ID, entities.OrderStatusConfirmed)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t)).(*OrderRepositoryImpl)

	_, err := repo.UpdateStatus(context.Background(), "nope", entities.OrderStatusConfirmed)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestConcurrentOrderCreatesAllPersist(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t)).(*OrderRepositoryImpl)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			o := &entities.Order{ProductID: "p1", Phone: "123", Address: "somewhere"}
			assert.NoError(t, repo.Create(ctx, o))
		}()
	}
	wg.Wait()

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, n)
}

func TestUserGetByEmailIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestStore(t)).(*UserRepositoryImpl)
	ctx := context.Background()

	u := &entities.User{Email: "Admin@Example.com", Name: "Admin", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByEmail(ctx, "admin@example.COM")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestStore(t)).(*UserRepositoryImpl)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Email: "a@b.c", Name: "A", PasswordHash: "x"}))
	err := repo.Create(ctx, &entities.User{Email: "A@B.C", Name: "B", PasswordHash: "y"})
	assert.ErrorIs(t, err, entities.ErrEmailTaken)
}

func TestConfigGetReadsFreshEveryCall(t *testing.T) {
	st := newTestStore(t)
	repo := NewConfigRepository(st).(*ConfigRepositoryImpl)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entities.SiteConfig{AdminAccessCode: "old-code", SiteName: "Shop"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old-code", got.AdminAccessCode)

	// Rotate the code and read again: no caching window.
	require.NoError(t, repo.Save(ctx, &entities.SiteConfig{AdminAccessCode: "new-code", SiteName: "Shop"}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-code", got.AdminAccessCode)
}

func TestConfigGetMissingFileReturnsZeroConfig(t *testing.T) {
	repo := NewConfigRepository(newTestStore(t)).(*ConfigRepositoryImpl)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.AdminAccessCode)
}
