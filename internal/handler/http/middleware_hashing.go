package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

// hashHeader carries the hex HMAC-SHA256 of the JSON-encoded request body.
const hashHeader = "HashSHA256"

// saveDataHashing checks the integrity hash of /save-data bodies. It is a
// pass-through when no hash key is configured.
func (h *Handler) saveDataHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.saveDataHashing").Msg("checking hash begins")

		hashFromRequest := r.Header.Get(hashHeader)
		if hashFromRequest == "" {
			h.logger.Error().Str("func", "*Handler.saveDataHashing").Msg("missing hash header")
			writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.saveDataHashing").Msg("failed to read request body")
			writeErrorMessage(w, http.StatusInternalServerError, app.MsgInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.SaveDataRequest
		if err := json.Unmarshal(body, &req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.saveDataHashing").Msg("failed to decode JSON")
			writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		}

		hashedBody, err := utils.HashJSON(req)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.saveDataHashing").Msg("failed to hash payload")
			writeErrorMessage(w, http.StatusInternalServerError, app.MsgInternalServerError)
			return
		}

		if !hmac.Equal([]byte(hashedBody), []byte(hashFromRequest)) {
			h.logger.Error().Str("func", "*Handler.saveDataHashing").
				Str("hash from request", hashFromRequest).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		}

		next.ServeHTTP(w, r)
	})
}
