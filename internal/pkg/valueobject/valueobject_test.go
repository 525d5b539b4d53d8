package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMap_Scan(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan([]byte(`{"provider":"facebook"}`)))
	assert.Equal(t, "facebook", m.GetString("provider"))

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, JSONMap{}, m)

	assert.ErrorIs(t, m.Scan(42), ErrScanValueNotBytes)
}

func TestJSONMap_ValueAndMerge(t *testing.T) {
	var nilMap JSONMap
	v, err := nilMap.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)

	m := nilMap.Merge(map[string]any{"a": 1})
	assert.Equal(t, JSONMap{"a": 1}, m)
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want Money
		err  bool
	}{
		{"14.99", 1499, false},
		{"14.9", 1490, false},
		{"14", 1400, false},
		{"0.05", 5, false},
		{"-3.50", -350, false},
		{"1.234", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{".5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMoney(tt.in)
		if tt.err {
			assert.ErrorIs(t, err, ErrInvalidMoney, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	assert.Equal(t, "29.98", Money(1499).Mul(2).String())
	assert.Equal(t, Money(150), Money(1000).Percent(15))
	assert.Equal(t, Money(1), Money(15).Percent(8.5))
	assert.Equal(t, "-0.05", Money(-5).String())
}

func TestMoney_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Price Money `json:"price"`
	}{Price: 1499})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"14.99"}`, string(b))

	var out struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2.50","b":3.1}`), &out))
	assert.Equal(t, Money(250), out.A)
	assert.Equal(t, Money(310), out.B)
}
