package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "emp-1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeBody(t, rec)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"month": "month is required"})

	assert.Equal(t, 422, rec.Code)

	env := decodeBody(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_failed", env.Error.Code)
	assert.Equal(t, "month is required", env.Error.Fields["month"])
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Employee not found")

	assert.Equal(t, 404, rec.Code)

	env := decodeBody(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)
	assert.Equal(t, "Employee not found", env.Error.Message)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		totalItems int64
		wantPages  int
	}{
		{name: "exact fit", limit: 20, totalItems: 40, wantPages: 2},
		{name: "partial last page", limit: 20, totalItems: 41, wantPages: 3},
		{name: "empty", limit: 20, totalItems: 0, wantPages: 0},
		{name: "single item", limit: 20, totalItems: 1, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(1, tt.limit, tt.totalItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.totalItems, p.TotalItems)
		})
	}
}
