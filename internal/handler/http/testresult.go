package http

import (
	"net/http"

	"github.com/MKhiriev/go-cwa-home/internal/app"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/utils"
	"github.com/MKhiriev/go-cwa-home/models"
)

// getTestResult returns the state of the test paired with the given token.
//
//	POST /api/testresult {"registration_token": "..."} -> 200 {"device_state": "..."}
func (h *Handler) getTestResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.TestResultRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid test result request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if request.RegistrationToken == "" {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.verification.GetTestResult(r.Context(), request.RegistrationToken)
	if err != nil {
		log.Err(err).Msg("test result lookup failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("device_state", result.DeviceState.String()).Msg("test result served")
	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing test result response")
	}
}
