package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCorrelationID(ctx))

	ctx = SetCorrelationID(ctx, "abc")
	assert.Equal(t, "abc", GetCorrelationID(ctx))
}

func TestMask(t *testing.T) {
	keys := MaskKeys([]string{" Password ", "credit_card", ""})

	got := Mask(map[string]any{
		"email":    "a@b.c",
		"PASSWORD": "secret",
		"nested":   []any{map[string]any{"credit_card": "4532015112830366"}},
	}, keys)

	assert.Equal(t, map[string]any{
		"email":    "a@b.c",
		"PASSWORD": Masked,
		"nested":   []any{map[string]any{"credit_card": Masked}},
	}, got)
}

func TestMaskJSON(t *testing.T) {
	keys := MaskKeys([]string{"password"})

	out, ok := MaskJSON([]byte(`{"password":"x","name":"y"}`), keys)
	require.True(t, ok)
	assert.JSONEq(t, `{"password":"***","name":"y"}`, string(out))

	_, ok = MaskJSON([]byte(`plain text`), keys)
	assert.False(t, ok)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogOptions{
		ServiceName: "storefront",
		Level:       slog.LevelInfo,
		MaskFields:  []string{"password"},
		Output:      &buf,
	})

	ctx := SetCorrelationID(context.Background(), "cid-1")
	log.InfoContext(ctx, "login", "password", "hunter2", "body", `{"password":"x"}`)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "login", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Equal(t, "cid-1", line["_cID"])
	assert.Equal(t, "storefront", line["service"])
	assert.Equal(t, Masked, line["password"])
	assert.JSONEq(t, `{"password":"***"}`, line["body"].(string))
	assert.Contains(t, line, "ts")
}

func TestNoop(t *testing.T) {
	ins := NewNoop()
	_, span := ins.Tracer("t").Start(context.Background(), "op")
	span.End()
	assert.NoError(t, ins.Shutdown(context.Background()))
}
