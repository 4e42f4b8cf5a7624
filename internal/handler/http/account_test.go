// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

var aliceCreds = models.CredentialsRequest{Identity: "alice@example.com", Secret: "pw"}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var gotIdentity, gotSecret string
	h := newTestHandler(&mockAccountService{
		registerFn: func(_ context.Context, identity, secret string) (models.Account, error) {
			gotIdentity, gotSecret = identity, secret
			return models.Account{Identity: identity}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, aliceCreds)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice@example.com", gotIdentity)
	assert.Equal(t, "pw", gotSecret)
	assert.Empty(t, rec.Header().Get("Authorization"), "registration must not sign in")

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, app.MsgRegistrationSucceeded, body.Message)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid JSON",
			body:       "{invalid json}",
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "missing fields",
			body:       `{"identity":""}`,
			serviceErr: fmt.Errorf("%w: identity is required", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "duplicate identity",
			body:       `{"identity":"alice@example.com","secret":"pw"}`,
			serviceErr: fmt.Errorf("create account: %w", store.ErrIdentityAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgIdentityAlreadyExists,
		},
		{
			name:       "storage failure",
			body:       `{"identity":"alice@example.com","secret":"pw"}`,
			serviceErr: errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAccountService{
				registerFn: func(context.Context, string, string) (models.Account, error) {
					return models.Account{}, tt.serviceErr
				},
			})

			rec := httptest.NewRecorder()
			h.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h := newTestHandler(&mockAccountService{
		loginFn: func(_ context.Context, identity, _ string) (models.Account, error) {
			return models.Account{Identity: identity, WorkingData: "server copy", CredentialHash: "$argon2id$..."}, nil
		},
		createTokenFn: func(_ context.Context, account models.Account) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt." + account.Identity}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, aliceCreds)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.alice@example.com", rec.Header().Get("Authorization"))
	assert.NotContains(t, rec.Body.String(), "argon2id", "credential hash must never leave the server")

	var body models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, app.MsgLoginSucceeded, body.Message)
	assert.Equal(t, "signed.jwt.alice@example.com", body.Token)
	assert.Equal(t, models.UserPayload{Identity: "alice@example.com", WorkingData: "server copy"}, body.User)
}

// Unknown identity and wrong secret must produce byte-identical responses.
func TestLogin_NotFoundAndWrongSecretAreIndistinguishable(t *testing.T) {
	respond := func(serviceErr error) *httptest.ResponseRecorder {
		h := newTestHandler(&mockAccountService{
			loginFn: func(context.Context, string, string) (models.Account, error) {
				return models.Account{}, serviceErr
			},
		})
		rec := httptest.NewRecorder()
		h.login(rec, httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, aliceCreds)))
		return rec
	}

	notFound := respond(fmt.Errorf("account search by identity failed: %w", store.ErrAccountNotFound))
	wrongSecret := respond(service.ErrWrongSecret)

	assert.Equal(t, http.StatusUnauthorized, notFound.Code)
	assert.Equal(t, notFound.Code, wrongSecret.Code)
	assert.Equal(t, notFound.Body.String(), wrongSecret.Body.String())
	assert.Equal(t, app.MsgInvalidIdentitySecret, decodeError(t, notFound))
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		tokenErr   error
		wantStatus int
	}{
		{name: "invalid JSON", body: "not json", wantStatus: http.StatusBadRequest},
		{name: "missing fields", body: `{}`, loginErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "storage failure", body: `{"identity":"a","secret":"b"}`, loginErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
		{name: "token failure", body: `{"identity":"a","secret":"b"}`, tokenErr: service.ErrTokenCreationFailed, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAccountService{
				loginFn: func(_ context.Context, identity, _ string) (models.Account, error) {
					return models.Account{Identity: identity}, tt.loginErr
				},
				createTokenFn: func(context.Context, models.Account) (models.Token, error) {
					return models.Token{}, tt.tokenErr
				},
			})

			rec := httptest.NewRecorder()
			h.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

// ─────────────────────────────────────────────
// saveData
// ─────────────────────────────────────────────

func saveDataRequest(t *testing.T, tokenIdentity string, body models.SaveDataRequest) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/save-data", jsonBody(t, body))
	if tokenIdentity != "" {
		req = req.WithContext(context.WithValue(req.Context(), utils.IdentityCtxKey, tokenIdentity))
	}
	return req
}

func TestSaveData_Success(t *testing.T) {
	var saved string
	h := newTestHandler(&mockAccountService{
		saveDataFn: func(_ context.Context, identity, workingData string) error {
			assert.Equal(t, "alice@example.com", identity)
			saved = workingData
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.saveData(rec, saveDataRequest(t, "alice@example.com", models.SaveDataRequest{Identity: "alice@example.com", WorkingData: "notes"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "notes", saved)
}

func TestSaveData_Errors(t *testing.T) {
	tests := []struct {
		name          string
		tokenIdentity string
		body          models.SaveDataRequest
		serviceErr    error
		wantStatus    int
		wantMsg       string
	}{
		{
			name:          "missing identity",
			tokenIdentity: "alice@example.com",
			body:          models.SaveDataRequest{WorkingData: "x"},
			wantStatus:    http.StatusBadRequest,
			wantMsg:       app.MsgInvalidDataProvided,
		},
		{
			name:          "token for another account",
			tokenIdentity: "mallory@example.com",
			body:          models.SaveDataRequest{Identity: "alice@example.com", WorkingData: "x"},
			wantStatus:    http.StatusForbidden,
			wantMsg:       app.MsgAccessDenied,
		},
		{
			name:       "no identity in context",
			body:       models.SaveDataRequest{Identity: "alice@example.com"},
			wantStatus: http.StatusForbidden,
			wantMsg:    app.MsgAccessDenied,
		},
		{
			name:          "account gone",
			tokenIdentity: "alice@example.com",
			body:          models.SaveDataRequest{Identity: "alice@example.com"},
			serviceErr:    fmt.Errorf("save: %w", store.ErrAccountNotFound),
			wantStatus:    http.StatusNotFound,
			wantMsg:       app.MsgAccountNotFound,
		},
		{
			name:          "too large",
			tokenIdentity: "alice@example.com",
			body:          models.SaveDataRequest{Identity: "alice@example.com"},
			serviceErr:    service.ErrInvalidDataProvided,
			wantStatus:    http.StatusBadRequest,
			wantMsg:       app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAccountService{
				saveDataFn: func(context.Context, string, string) error { return tt.serviceErr },
			})

			rec := httptest.NewRecorder()
			h.saveData(rec, saveDataRequest(t, tt.tokenIdentity, tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// deleteUser
// ─────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "wrong secret", serviceErr: service.ErrWrongSecret, wantStatus: http.StatusUnauthorized},
		{name: "not found", serviceErr: fmt.Errorf("find: %w", store.ErrAccountNotFound), wantStatus: http.StatusNotFound},
		{name: "missing fields", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "storage failure", serviceErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAccountService{
				deleteAccountFn: func(_ context.Context, identity, secret string) error {
					assert.Equal(t, aliceCreds.Identity, identity)
					assert.Equal(t, aliceCreds.Secret, secret)
					return tt.serviceErr
				},
			})

			rec := httptest.NewRecorder()
			h.deleteUser(rec, httptest.NewRequest(http.MethodPost, "/delete-user", jsonBody(t, aliceCreds)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
