package services

import (
	"context"
	"fmt"

	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/ports"
)

// AuthService handles admin authentication. Password hashing and
// session tokens are opaque capabilities supplied through ports.
type AuthService struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	sessions ports.SessionManager
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo ports.UserRepository, hasher ports.PasswordHasher, sessions ports.SessionManager, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies credentials and issues a session token bound to the
// user's id. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, req ports.LoginRequest) (*ports.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warnw("Login attempt with unknown email", "email", req.Email)
		return nil, entities.ErrUnauthorized
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.logger.Warnw("Login attempt with wrong password", "email", req.Email)
		return nil, entities.ErrUnauthorized
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	s.logger.Infow("Admin logged in", "user_id", user.ID)

	// Never hand the credential digest back out.
	sanitized := *user
	sanitized.PasswordHash = ""

	return &ports.LoginResponse{
		Token: token,
		User:  &sanitized,
	}, nil
}

// Logout records the end of a session. Token invalidation itself is
// the session capability's concern (the token simply expires); the
// client discards it on logout.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	s.logger.Infow("Admin logged out", "user_id", userID)
}

// CreateUser creates an admin account with a hashed credential
func (s *AuthService) CreateUser(ctx context.Context, req ports.CreateUserRequest) (*entities.User, error) {
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: digest,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("User created", "user_id", user.ID, "email", user.Email)
	return user, nil
}
