package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cwa-home/internal/app"
	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/internal/store"
	"github.com/MKhiriev/go-cwa-home/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first sentinel matched by
// errors.Is wins. store.ErrTransient is listed last because a transient
// error is joined with the original cause.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidGUID, errorResponse{http.StatusBadRequest, app.MsgInvalidGUID}},
	{service.ErrInvalidDeviceState, errorResponse{http.StatusBadRequest, app.MsgInvalidDeviceState}},
	{utils.ErrEmptyBody, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{store.ErrRegistrationNotFound, errorResponse{http.StatusNotFound, app.MsgRegistrationNotFound}},
	{store.ErrGUIDAlreadyRegistered, errorResponse{http.StatusConflict, app.MsgGUIDAlreadyRegistered}},
	{store.ErrTransient, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError answers with the status and message mapped from err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
