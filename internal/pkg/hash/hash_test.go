package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashers(t *testing.T) {
	cheap := Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

	hashers := map[string]Hash{
		"argon2id": NewArgon2idWithParams("pepper", cheap, 1),
		"bcrypt":   NewBcrypt(bcrypt.MinCost, "pepper"),
		"hmac":     NewHMACSHA256("secret"),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			digest, err := h.Hash("correct horse")
			require.NoError(t, err)
			require.NotEmpty(t, digest)

			assert.True(t, h.Verify(string(digest), "correct horse"))
			assert.False(t, h.Verify(string(digest), "wrong horse"))
			assert.False(t, h.Verify("", "correct horse"))
		})
	}
}

func TestArgon2id_PepperMatters(t *testing.T) {
	cheap := Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

	digest, err := NewArgon2idWithParams("a", cheap, 0).Hash("secret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(digest), "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.False(t, NewArgon2idWithParams("b", cheap, 0).Verify(string(digest), "secret"))
}

func TestArgon2id_VerifyRejectsMalformed(t *testing.T) {
	a := NewArgon2id("")
	for _, in := range []string{
		"plain",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=1$m=1,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$bad$c2FsdA$a2V5",
		"$argon2id$v=19$m=1,t=1,p=1$!!$a2V5",
		"$argon2id$v=19$m=1,t=1,p=1$c2FsdA$",
	} {
		assert.False(t, a.Verify(in, "secret"), in)
	}
}

func TestBcrypt_TooLong(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost, "").Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrSecretTooLong)
}

func TestHMACSHA256_Deterministic(t *testing.T) {
	h := NewHMACSHA256("k")
	a, _ := h.Hash("token")
	b, _ := h.Hash("token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}
