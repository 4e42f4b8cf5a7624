package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	if _, err := h.services.AccountService.Register(r.Context(), req.Identity, req.Secret); err != nil {
		log.Err(err).Str("func", "*Handler.register").Str("identity", req.Identity).Msg("registration failed")
		writeError(w, err)
		return
	}

	log.Info().Str("identity", req.Identity).Msg("account registered")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRegistrationSucceeded}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	account, err := h.services.AccountService.Login(ctx, req.Identity, req.Secret)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Str("identity", req.Identity).Msg("login failed")
		// unknown identity and wrong secret must be indistinguishable
		if errors.Is(err, store.ErrAccountNotFound) || errors.Is(err, service.ErrWrongSecret) {
			writeErrorMessage(w, http.StatusUnauthorized, app.MsgInvalidIdentitySecret)
			return
		}
		writeError(w, err)
		return
	}

	token, err := h.services.AccountService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("creation of token failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSucceeded,
		Token:   token.SignedString,
		User: models.UserPayload{
			Identity:    account.Identity,
			WorkingData: account.WorkingData,
		},
	}, http.StatusOK)
}

func (h *Handler) saveData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SaveDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveData").Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}
	if req.Identity == "" {
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	tokenIdentity, ok := utils.GetIdentityFromContext(ctx)
	if !ok || tokenIdentity != req.Identity {
		log.Warn().Str("func", "*Handler.saveData").
			Str("token identity", tokenIdentity).
			Str("body identity", req.Identity).
			Msg("token does not belong to the account")
		writeError(w, service.ErrAccessDenied)
		return
	}

	if err := h.services.AccountService.SaveData(ctx, req.Identity, req.WorkingData); err != nil {
		log.Err(err).Str("func", "*Handler.saveData").Str("identity", req.Identity).Msg("saving working data failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDataSaved}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	if err := h.services.AccountService.DeleteAccount(r.Context(), req.Identity, req.Secret); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Str("identity", req.Identity).Msg("account deletion failed")
		writeError(w, err)
		return
	}

	log.Info().Str("identity", req.Identity).Msg("account deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAccountDeleted}, http.StatusOK)
}
