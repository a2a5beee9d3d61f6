package repository

import (
	"context"
	"fmt"

	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/store"
	"github.com/flexmobile/shop/internal/ports"
)

// ConfigCollection is the store collection name for the site config.
// Unlike the other collections it holds a single object, not an array.
const ConfigCollection = "config"

// ConfigRepositoryImpl implements the ConfigRepository interface on top
// of the durable record store
type ConfigRepositoryImpl struct {
	store *store.Store
}

// NewConfigRepository creates a new config repository
func NewConfigRepository(st *store.Store) ports.ConfigRepository {
	return &ConfigRepositoryImpl{store: st}
}

// Get reads the site config fresh from the store. There is no caching:
// a rotated admin access code takes effect on the next check.
func (r *ConfigRepositoryImpl) Get(ctx context.Context) (*entities.SiteConfig, error) {
	cfg := entities.SiteConfig{}
	if err := r.store.Load(ConfigCollection, &cfg); err != nil {
		return nil, fmt.Errorf("load site config: %w", err)
	}
	return &cfg, nil
}

func (r *ConfigRepositoryImpl) Save(ctx context.Context, cfg *entities.SiteConfig) error {
	_, err := store.Update(r.store, ConfigCollection, entities.SiteConfig{},
		func(entities.SiteConfig) (entities.SiteConfig, error) {
			return *cfg, nil
		})
	if err != nil {
		return fmt.Errorf("save site config: %w", err)
	}
	return nil
}
