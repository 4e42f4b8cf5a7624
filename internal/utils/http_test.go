package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-account-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "message",
			data:     models.MessageResponse{Message: "server is running"},
			status:   http.StatusOK,
			wantBody: `{"message":"server is running"}`,
		},
		{
			name:     "error with custom status",
			data:     models.ErrorResponse{Error: "account not found"},
			status:   http.StatusNotFound,
			wantBody: `{"error":"account not found"}`,
		},
		{
			name: "login response",
			data: models.LoginResponse{
				Message: "ok",
				Token:   "tok",
				User:    models.UserPayload{Identity: "alice@example.com", WorkingData: "notes"},
			},
			status:   http.StatusOK,
			wantBody: `{"message":"ok","token":"tok","user":{"identity":"alice@example.com","workingData":"notes"}}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusCreated,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_UnsupportedValue(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
