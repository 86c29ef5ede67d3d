package http

import (
	"net/http"

	"github.com/MKhiriev/go-cwa-home/internal/app"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/utils"
	"github.com/MKhiriev/go-cwa-home/models"
)

// registerTest pairs a scanned test GUID with the calling device.
//
//	POST /api/registration {"guid": "..."} -> 201 {"registration_token": "..."}
func (h *Handler) registerTest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegistrationRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid registration request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.verification.RegisterTest(r.Context(), request.GUID)
	if err != nil {
		log.Err(err).Msg("test registration failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.RegistrationResponse{RegistrationToken: token.String()}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing registration response")
	}
}
