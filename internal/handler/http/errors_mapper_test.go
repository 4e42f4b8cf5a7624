package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{fmt.Errorf("%w: secret is required", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{service.ErrWrongSecret, http.StatusUnauthorized, app.MsgWrongSecret},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
		{fmt.Errorf("insert: %w", store.ErrIdentityAlreadyExists), http.StatusBadRequest, app.MsgIdentityAlreadyExists},
		{fmt.Errorf("find: %w", store.ErrAccountNotFound), http.StatusNotFound, app.MsgAccountNotFound},
		{store.ErrStorageUnavailable, http.StatusInternalServerError, app.MsgInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMsg, resp.message)
		})
	}
}
