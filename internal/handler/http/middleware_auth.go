package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AccountService.ParseToken] and stores the token subject in the
// request context under [utils.IdentityCtxKey]. Every rejection answers 401
// with the "token is expired or invalid" body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeErrorMessage(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeErrorMessage(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		token, err := h.services.AccountService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeErrorMessage(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a "Bearer <token>" header
// value. Any other scheme is rejected.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
