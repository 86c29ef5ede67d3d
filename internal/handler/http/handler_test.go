package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/app"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/mock"
	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/internal/store"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testGUID = "3D6D08-3567F3F2-4DCF-43A3-8737-4CD1F87D6FDA"

type testRouter struct {
	verification *mock.MockVerificationService
	appInfo      *mock.MockAppInfoService
	router       http.Handler
}

func newTestRouter(t *testing.T) testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)

	verification := mock.NewMockVerificationService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		VerificationService: verification,
		AppInfoService:      appInfo,
	}, logger.Nop())

	return testRouter{verification: verification, appInfo: appInfo, router: h.Init()}
}

func (tr testRouter) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	tr.router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	verification := mock.NewMockVerificationService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	l := logger.Nop()

	h := NewHandler(&service.Services{VerificationService: verification, AppInfoService: appInfo}, l)

	require.NotNil(t, h)
	assert.Same(t, verification, h.verification)
	assert.Same(t, appInfo, h.appInfo)
	assert.Same(t, l, h.logger)
}

func TestNewHandler_NilServices(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	require.NotNil(t, h)
	assert.Nil(t, h.verification)
	assert.Nil(t, h.appInfo)
}

func TestRegisterTest(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.verification.EXPECT().
			RegisterTest(gomock.Any(), testGUID).
			Return(models.RegistrationToken{SignedString: "signed.jwt.token"}, nil)

		rec := tr.do(http.MethodPost, "/api/registration", `{"guid":"`+testGUID+`"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"registration_token":"signed.jwt.token"}`, rec.Body.String())
	})

	errorCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"invalid guid", service.ErrInvalidGUID, http.StatusBadRequest, app.MsgInvalidGUID},
		{"guid reused", store.ErrGUIDAlreadyRegistered, http.StatusConflict, app.MsgGUIDAlreadyRegistered},
		{"transient db failure", errors.Join(store.ErrTransient, errors.New("conn reset")), http.StatusServiceUnavailable, app.MsgServiceUnavailable},
		{"unexpected failure", service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestRouter(t)
			tr.verification.EXPECT().RegisterTest(gomock.Any(), gomock.Any()).Return(models.RegistrationToken{}, tc.err)

			rec := tr.do(http.MethodPost, "/api/registration", `{"guid":"`+testGUID+`"}`)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectedBody, strings.TrimSpace(rec.Body.String()))
		})
	}

	t.Run("malformed body never reaches the service", func(t *testing.T) {
		tr := newTestRouter(t)

		for _, body := range []string{"", "{", `{"guid":42}`, `{"unknown":"x"}`} {
			rec := tr.do(http.MethodPost, "/api/registration", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		}
	})
}

func TestGetTestResult(t *testing.T) {
	t.Run("returns state and received date", func(t *testing.T) {
		tr := newTestRouter(t)
		received := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		tr.verification.EXPECT().
			GetTestResult(gomock.Any(), "token").
			Return(models.TestResultResponse{DeviceState: models.PairedNegative, ReceivedAt: &received}, nil)

		rec := tr.do(http.MethodPost, "/api/testresult", `{"registration_token":"token"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"device_state":"PAIRED_NEGATIVE","received_at":"2026-03-01T10:00:00Z"}`, rec.Body.String())
	})

	t.Run("pending result omits received date", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.verification.EXPECT().
			GetTestResult(gomock.Any(), "token").
			Return(models.TestResultResponse{DeviceState: models.PairedNoResult}, nil)

		rec := tr.do(http.MethodPost, "/api/testresult", `{"registration_token":"token"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"device_state":"PAIRED_NO_RESULT"}`, rec.Body.String())
	})

	errorCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"unknown registration", store.ErrRegistrationNotFound, http.StatusNotFound},
		{"transient", errors.Join(store.ErrTransient, store.ErrExecutingQuery), http.StatusServiceUnavailable},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestRouter(t)
			tr.verification.EXPECT().GetTestResult(gomock.Any(), gomock.Any()).Return(models.TestResultResponse{}, tc.err)

			rec := tr.do(http.MethodPost, "/api/testresult", `{"registration_token":"token"}`)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}

	t.Run("empty token is rejected", func(t *testing.T) {
		tr := newTestRouter(t)

		rec := tr.do(http.MethodPost, "/api/testresult", `{"registration_token":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSaveLabResult(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.verification.EXPECT().
			SaveLabResult(gomock.Any(), models.LabResultRequest{GUID: testGUID, DeviceState: models.PairedPositive}).
			Return(nil)

		rec := tr.do(http.MethodPut, "/api/lab/results", `{"guid":"`+testGUID+`","device_state":"PAIRED_POSITIVE"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("invalid state", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.verification.EXPECT().SaveLabResult(gomock.Any(), gomock.Any()).Return(service.ErrInvalidDeviceState)

		rec := tr.do(http.MethodPut, "/api/lab/results", `{"guid":"`+testGUID+`","device_state":"SUBMITTED_FINAL"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidDeviceState, strings.TrimSpace(rec.Body.String()))
	})

	t.Run("empty body", func(t *testing.T) {
		tr := newTestRouter(t)

		rec := tr.do(http.MethodPut, "/api/lab/results", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInit_Routes(t *testing.T) {
	tr := newTestRouter(t)
	tr.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()

	t.Run("version", func(t *testing.T) {
		rec := tr.do(http.MethodGet, "/api/version/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1.0.0", rec.Body.String())
	})

	t.Run("trace id is always set", func(t *testing.T) {
		rec := tr.do(http.MethodGet, "/api/version/", "")
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	notFound := []struct{ method, path string }{
		{http.MethodGet, "/api/registration"},
		{http.MethodGet, "/api/testresult"},
		{http.MethodPost, "/api/lab/results"},
		{http.MethodDelete, "/api/version/"},
		{http.MethodGet, "/api/user/login"},
	}
	for _, nf := range notFound {
		t.Run(nf.method+" "+nf.path, func(t *testing.T) {
			rec := tr.do(nf.method, nf.path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidGUID, http.StatusBadRequest},
		{service.ErrInvalidDeviceState, http.StatusBadRequest},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{store.ErrRegistrationNotFound, http.StatusNotFound},
		{store.ErrGUIDAlreadyRegistered, http.StatusConflict},
		{errors.Join(store.ErrTransient, errors.New("x")), http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
