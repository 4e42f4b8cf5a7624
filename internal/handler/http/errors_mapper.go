package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongSecret:             {http.StatusUnauthorized, app.MsgWrongSecret},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrAccessDenied:            {http.StatusForbidden, app.MsgAccessDenied},

	store.ErrIdentityAlreadyExists: {http.StatusBadRequest, app.MsgIdentityAlreadyExists},
	store.ErrAccountNotFound:       {http.StatusNotFound, app.MsgAccountNotFound},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError answers with the {"error": ...} body for err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	writeErrorMessage(w, resp.status, resp.message)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
