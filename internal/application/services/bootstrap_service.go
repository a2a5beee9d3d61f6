package services

import (
	"context"
	"fmt"

	"github.com/flexmobile/shop/internal/adapters/repository"
	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/infrastructure/store"
	"github.com/flexmobile/shop/internal/ports"
)

// Bootstrap defaults for an empty store
const (
	DefaultAdminEmail    = "admin@flexmobile.local"
	DefaultAdminName     = "Admin"
	DefaultAdminPassword = "admin123"
	DefaultAccessCode    = "flex-key-12345"
	DefaultSiteName      = "FlexMobile Shop"
)

// BootstrapService seeds an empty store at process start: a default
// admin credential, the site config, and empty product and order
// collections. Running it against a populated store changes nothing.
type BootstrapService struct {
	store      *store.Store
	userRepo   ports.UserRepository
	configRepo ports.ConfigRepository
	hasher     ports.PasswordHasher
	logger     *logger.Logger
}

// NewBootstrapService creates a new bootstrap service
func NewBootstrapService(st *store.Store, userRepo ports.UserRepository, configRepo ports.ConfigRepository, hasher ports.PasswordHasher, logger *logger.Logger) *BootstrapService {
	return &BootstrapService{
		store:      st,
		userRepo:   userRepo,
		configRepo: configRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

// Run performs the one-time initialization
func (s *BootstrapService) Run(ctx context.Context) error {
	if err := s.ensureConfig(ctx); err != nil {
		return err
	}
	if err := s.ensureAdminUser(ctx); err != nil {
		return err
	}
	if err := s.ensureCollection(repository.ProductsCollection, []entities.Product{}); err != nil {
		return err
	}
	if err := s.ensureCollection(repository.OrdersCollection, []entities.Order{}); err != nil {
		return err
	}
	return nil
}

func (s *BootstrapService) ensureConfig(ctx context.Context) error {
	if s.store.Exists(repository.ConfigCollection) {
		return nil
	}

	cfg := &entities.SiteConfig{
		AdminAccessCode: DefaultAccessCode,
		SiteName:        DefaultSiteName,
	}
	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("bootstrap site config: %w", err)
	}

	s.logger.Infow("Initialized default site config", "site_name", cfg.SiteName)
	return nil
}

func (s *BootstrapService) ensureAdminUser(ctx context.Context) error {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap users: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	digest, err := s.hasher.Hash(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin credential: %w", err)
	}

	admin := &entities.User{
		Email:        DefaultAdminEmail,
		Name:         DefaultAdminName,
		PasswordHash: digest,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("bootstrap admin user: %w", err)
	}

	// Logged once so the operator can log in; rotate it right after.
	s.logger.Warnw("Initialized default admin account",
		"email", DefaultAdminEmail, "password", DefaultAdminPassword)
	return nil
}

func (s *BootstrapService) ensureCollection(collection string, empty interface{}) error {
	if s.store.Exists(collection) {
		return nil
	}
	if err := s.store.Save(collection, empty); err != nil {
		return fmt.Errorf("bootstrap %s collection: %w", collection, err)
	}
	return nil
}
