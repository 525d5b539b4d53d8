package uid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// Token generates opaque 64 character hex strings: an 8 byte millisecond
// timestamp followed by 24 random bytes. They are unguessable and sort by
// creation time.
type Token struct {
	now func() time.Time
}

func NewToken() *Token {
	return &Token{now: time.Now}
}

func (t *Token) Generate() string {
	var raw [32]byte
	binary.BigEndian.PutUint64(raw[:8], uint64(t.now().UnixMilli())) //nolint:gosec // unix millis are positive
	_, _ = rand.Read(raw[8:])                                        // crypto/rand.Read never returns an error

	return hex.EncodeToString(raw[:])
}
