package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/flexmobile/shop/internal/ports"
)

// BcryptHasher implements the PasswordHasher port with bcrypt
type BcryptHasher struct {
	cost int
}

// NewPasswordHasher creates a bcrypt-backed password hasher
func NewPasswordHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
