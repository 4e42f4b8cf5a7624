package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlowRouter wires the real services over the in-memory account store.
func newFlowRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:   "flow-sign-key",
			TokenIssuer:    "go-account-sync",
			TokenDuration:  time.Hour,
			PasswordHasher: config.HasherArgon2id,
			Version:        "0.0.0-flow",
		},
		Storage: config.Storage{DB: config.DB{DSN: config.MemoryDSN}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg, logger.Nop()).Init()
}

type flowStep struct {
	name       string
	path       string
	body       any
	withToken  bool
	wantStatus int
	wantError  string
	// wantData is checked on successful /login answers
	wantData *string
}

func strPtr(s string) *string { return &s }

func TestAccountFlow(t *testing.T) {
	const (
		identity = "ann@example.com"
		secret   = "correct horse"
	)
	longSecret := strings.Repeat("w", 80)

	creds := func(id, s string) models.CredentialsRequest {
		return models.CredentialsRequest{Identity: id, Secret: s}
	}

	steps := []flowStep{
		{name: "register", path: "/register", body: creds(identity, secret), wantStatus: http.StatusCreated},
		{name: "duplicate register", path: "/register", body: creds(identity, "other"), wantStatus: http.StatusBadRequest, wantError: app.MsgIdentityAlreadyExists},
		{name: "fresh account has empty data", path: "/login", body: creds(identity, secret), wantStatus: http.StatusOK, wantData: strPtr("")},
		// the token is checked before the body
		{name: "save without token or identity", path: "/save-data", body: models.SaveDataRequest{WorkingData: "x"}, wantStatus: http.StatusUnauthorized, wantError: app.MsgTokenIsExpiredOrInvalid},
		{name: "save without token", path: "/save-data", body: models.SaveDataRequest{Identity: identity, WorkingData: "x"}, wantStatus: http.StatusUnauthorized, wantError: app.MsgTokenIsExpiredOrInvalid},
		{name: "save", path: "/save-data", body: models.SaveDataRequest{Identity: identity, WorkingData: "notes v1"}, withToken: true, wantStatus: http.StatusOK},
		{name: "save same data again", path: "/save-data", body: models.SaveDataRequest{Identity: identity, WorkingData: "notes v1"}, withToken: true, wantStatus: http.StatusOK},
		{name: "login returns saved data", path: "/login", body: creds(identity, secret), wantStatus: http.StatusOK, wantData: strPtr("notes v1")},
		{name: "save for another identity", path: "/save-data", body: models.SaveDataRequest{Identity: "bob@example.com", WorkingData: "x"}, withToken: true, wantStatus: http.StatusForbidden, wantError: app.MsgAccessDenied},
		{name: "near-miss secret", path: "/login", body: creds(identity, secret+"!"), wantStatus: http.StatusUnauthorized, wantError: app.MsgInvalidIdentitySecret},
		{name: "overlong wrong secret", path: "/login", body: creds(identity, longSecret), wantStatus: http.StatusUnauthorized, wantError: app.MsgInvalidIdentitySecret},
		{name: "overlong secret for unknown identity", path: "/login", body: creds("nobody@example.com", longSecret), wantStatus: http.StatusUnauthorized, wantError: app.MsgInvalidIdentitySecret},
		{name: "delete with wrong secret", path: "/delete-user", body: creds(identity, "nope"), wantStatus: http.StatusUnauthorized, wantError: app.MsgWrongSecret},
		{name: "delete with overlong wrong secret", path: "/delete-user", body: creds(identity, longSecret), wantStatus: http.StatusUnauthorized, wantError: app.MsgWrongSecret},
		{name: "account survives failed deletes", path: "/login", body: creds(identity, secret), wantStatus: http.StatusOK, wantData: strPtr("notes v1")},
		{name: "delete", path: "/delete-user", body: creds(identity, secret), wantStatus: http.StatusOK},
		{name: "login after delete", path: "/login", body: creds(identity, secret), wantStatus: http.StatusUnauthorized, wantError: app.MsgInvalidIdentitySecret},
		{name: "delete twice", path: "/delete-user", body: creds(identity, secret), wantStatus: http.StatusNotFound, wantError: app.MsgAccountNotFound},
		{name: "identity is free again", path: "/register", body: creds(identity, "new secret"), wantStatus: http.StatusCreated},
	}

	router := newFlowRouter(t)
	var token string

	// steps share one store and run in order
	for _, step := range steps {
		ok := t.Run(step.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, step.path, jsonBody(t, step.body))
			req.Header.Set("Content-Type", "application/json")
			if step.withToken {
				require.NotEmpty(t, token, "no login step ran before")
				req.Header.Set("Authorization", "Bearer "+token)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, step.wantStatus, rec.Code, rec.Body.String())

			if step.wantError != "" {
				assert.Equal(t, step.wantError, decodeError(t, rec))
				return
			}

			if step.path == "/login" {
				var resp models.LoginResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, identity, resp.User.Identity)
				assert.NotEmpty(t, resp.Token)
				if step.wantData != nil {
					assert.Equal(t, *step.wantData, resp.User.WorkingData)
				}
				token = resp.Token
			}
		})
		if !ok {
			t.FailNow()
		}
	}
}
