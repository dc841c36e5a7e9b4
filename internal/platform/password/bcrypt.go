// Package password hashes account passwords with bcrypt.
//
// bcrypt reads at most 72 bytes of input, so passwords are first reduced to
// a fixed-length SHA-256 digest (base64, 44 bytes). Every byte of a password
// of any length contributes to the stored hash.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.PasswordHasher = (*Hasher)(nil)

// Hasher implements [ports.PasswordHasher] using bcrypt.
type Hasher struct {
	cost int
}

// New creates a Hasher. A cost outside bcrypt's accepted range falls back to
// bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of the password's digest.
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(digest(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(b), nil
}

func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
