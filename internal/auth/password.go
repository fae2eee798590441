package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost used for every stored password.
const DefaultBcryptCost = 12

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	Cost int
	// dummy is compared against when no user exists so both failure paths
	// take about the same time.
	dummy []byte
}

// NewBcryptHasher returns a hasher with the given cost (DefaultBcryptCost when zero).
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("kitesurf-dummy-password"), cost)
	return &BcryptHasher{Cost: cost, dummy: dummy}
}

// Hash returns the bcrypt hash of password.
func (b *BcryptHasher) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether password matches hash. An empty hash never matches
// but still costs one comparison.
func (b *BcryptHasher) Verify(hash, password string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(b.dummy, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
