package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incomingTrace string
	}{
		{name: "echoes incoming trace id", incomingTrace: "trace-42"},
		{name: "generates trace id when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
			if tt.incomingTrace != "" {
				req.Header.Set(traceIDHeader, tt.incomingTrace)
			}
			rec := httptest.NewRecorder()

			newTestHandler().withTraceID(next).ServeHTTP(rec, req)

			require.True(t, called)
			got := rec.Header().Get(traceIDHeader)
			if tt.incomingTrace != "" {
				assert.Equal(t, tt.incomingTrace, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rec.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}
