// Package crypto provides the password hashing primitives used by the
// identity services. Hashing is exposed through the [PasswordHasher]
// interface so services receive an explicitly constructed instance instead
// of reaching for package-level state.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is a one-way password hashing facility.
type PasswordHasher interface {
	// Hash derives a storable one-way hash from the plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether plaintext password matches the stored hash.
	Verify(password, hash string) bool
}

// bcryptHasher implements [PasswordHasher] on top of golang.org/x/crypto/bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
