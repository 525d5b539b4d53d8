package uid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflake_Unique(t *testing.T) {
	t.Setenv("SNOWFLAKE_NODE", "7")

	gen, err := NewSnowflake()
	require.NoError(t, err)

	seen := make(map[int64]struct{}, 1000)
	for range 1000 {
		id := gen.Generate()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestSnowflake_BadNode(t *testing.T) {
	t.Setenv("SNOWFLAKE_NODE", "5000")

	_, err := NewSnowflake()
	assert.ErrorIs(t, err, ErrNodeOutOfRange)
}

func TestToken_Generate(t *testing.T) {
	tok := &Token{now: func() time.Time { return time.UnixMilli(1700000000000) }}

	a := tok.Generate()
	b := tok.Generate()

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a[:16], b[:16])
}

func TestUUID_Generate(t *testing.T) {
	id := NewUUID().Generate()
	assert.True(t, IsUUID(id))
	assert.False(t, IsUUID("not-a-uuid"))
}
