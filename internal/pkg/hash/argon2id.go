package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params are the cost parameters encoded into every argon2id digest.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follows the OWASP minimum for argon2id.
var DefaultArgon2Params = Argon2Params{
	Memory:      32 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2id hashes with argon2id in PHC string format.
//
// Argon2 is memory hard, so at most limit computations run at once.
type Argon2id struct {
	params Argon2Params
	pepper string
	sema   chan struct{}
}

// NewArgon2id returns an Argon2id hasher with DefaultArgon2Params and two concurrent slots.
func NewArgon2id(pepper string) *Argon2id {
	return NewArgon2idWithParams(pepper, DefaultArgon2Params, 2)
}

// NewArgon2idWithParams returns an Argon2id hasher; limit <= 0 disables the limiter.
func NewArgon2idWithParams(pepper string, params Argon2Params, limit int) *Argon2id {
	a := &Argon2id{params: params, pepper: pepper}
	if limit > 0 {
		a.sema = make(chan struct{}, limit)
	}
	return a
}

func (a *Argon2id) key(str string, salt []byte, p Argon2Params) []byte {
	if a.sema != nil {
		a.sema <- struct{}{}
		defer func() { <-a.sema }()
	}
	return argon2.IDKey([]byte(str+a.pepper), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// Hash returns $argon2id$v=19$m=..,t=..,p=..$salt$key.
func (a *Argon2id) Hash(str string) ([]byte, error) {
	salt := make([]byte, a.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := a.key(str, salt, a.params)

	return fmt.Appendf(nil, "$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.params.Memory, a.params.Iterations, a.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether str matches hashed. Parameters are read from hashed,
// so digests created with older parameters still verify.
func (a *Argon2id) Verify(hashed, str string) bool {
	if hashed == "" || str == "" {
		return false
	}

	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}
	p.KeyLength = uint32(len(want)) //nolint:gosec // length of a decoded key

	return subtle.ConstantTimeCompare(want, a.key(str, salt, p)) == 1
}
