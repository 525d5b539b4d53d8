package goerror

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeTooManyRequest, http.StatusTooManyRequests},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeTimeout, http.StatusRequestTimeout},
		{CodeInternal, http.StatusInternalServerError},
		{Code(99), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			var gerr *Error
			require.ErrorAs(t, NewBusiness("x", tt.code), &gerr)
			assert.Equal(t, tt.want, gerr.StatusCode())
		})
	}
}

func TestNewServer(t *testing.T) {
	cause := errors.New("db down")
	err := NewServer(cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.Equal(t, TypeServer, gerr.Type())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "db down", err.Error())
}

func TestNewInvalidInput(t *testing.T) {
	t.Run("wraps validator error", func(t *testing.T) {
		cause := errors.New("name is required")
		var gerr *Error
		require.ErrorAs(t, NewInvalidInput(cause), &gerr)
		assert.Equal(t, CodeInvalidInput, gerr.Code())
		assert.ErrorIs(t, gerr, cause)
	})

	t.Run("fields from pairs", func(t *testing.T) {
		var gerr *Error
		require.ErrorAs(t, NewInvalidInput(nil, "email", "taken", "name", "short"), &gerr)
		assert.Equal(t, map[string]string{"email": "taken", "name": "short"}, gerr.Fields())
	})

	t.Run("odd pairs become invalid format", func(t *testing.T) {
		var gerr *Error
		require.ErrorAs(t, NewInvalidInput(nil, "email"), &gerr)
		assert.Equal(t, CodeInvalidFormat, gerr.Code())
		assert.Equal(t, "Invalid request body", gerr.Msg())
	})
}

func TestNewInvalidFormat(t *testing.T) {
	var gerr *Error
	require.ErrorAs(t, NewInvalidFormat(), &gerr)
	assert.Equal(t, "Invalid request body", gerr.Msg())

	require.ErrorAs(t, NewInvalidFormat("bad id"), &gerr)
	assert.Equal(t, "bad id", gerr.Msg())
}

func TestError_FieldsIsACopy(t *testing.T) {
	var gerr *Error
	require.ErrorAs(t, NewInvalidInput(nil, "a", "b"), &gerr)

	f := gerr.Fields()
	f["a"] = "changed"

	assert.Equal(t, "b", gerr.Fields()["a"])
}

var reasonTest = Reason{ID: "TST_01", Message: "Test failure", Type: TypeBusiness, Code: CodeNotFound}

func TestReason_New(t *testing.T) {
	err := reasonTest.New("field", "thing")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "TST_01", gerr.Reason())
	assert.Equal(t, "Test failure", gerr.Msg())
	assert.Equal(t, http.StatusNotFound, gerr.StatusCode())
	assert.Equal(t, map[string]string{"field": "thing"}, gerr.Fields())
	assert.True(t, reasonTest.Is(err))
	assert.True(t, reasonTest.Is(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, reasonTest.Is(errors.New("other")))
}

func TestReason_NewReturnsDistinctValues(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Go(func() {
			errs[i] = reasonTest.New("field", fmt.Sprint(i))
		})
	}
	wg.Wait()

	for i, err := range errs {
		var gerr *Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, fmt.Sprint(i), gerr.Fields()["field"])
	}
}

func TestReason_Wrap(t *testing.T) {
	cause := errors.New("boom")
	err := reasonTest.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, reasonTest.Is(err))
}
