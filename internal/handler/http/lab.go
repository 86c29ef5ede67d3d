package http

import (
	"net/http"

	"github.com/MKhiriev/go-cwa-home/internal/app"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/utils"
	"github.com/MKhiriev/go-cwa-home/models"
)

// saveLabResult stores the result a lab reports for a test GUID.
//
//	PUT /api/lab/results {"guid": "...", "device_state": "..."} -> 204
func (h *Handler) saveLabResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LabResultRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid lab result request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.verification.SaveLabResult(r.Context(), request); err != nil {
		log.Err(err).Msg("saving lab result failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
