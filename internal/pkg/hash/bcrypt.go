package hash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrSecretTooLong is returned when secret plus pepper exceeds the 72 bytes bcrypt reads.
var ErrSecretTooLong = errors.New("hash: bcrypt input longer than 72 bytes")

// Bcrypt hashes with bcrypt; the pepper is appended to every secret.
type Bcrypt struct {
	cost   int
	pepper string
}

// NewBcrypt returns a bcrypt hasher. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewBcrypt(cost int, pepper string) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost, pepper: pepper}
}

func (h *Bcrypt) Hash(plaintext string) ([]byte, error) {
	in := []byte(plaintext + h.pepper)
	if len(in) > 72 {
		return nil, ErrSecretTooLong
	}
	return bcrypt.GenerateFromPassword(in, h.cost)
}

func (h *Bcrypt) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext+h.pepper)) == nil
}
