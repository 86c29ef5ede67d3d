package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/utils"
	"github.com/MKhiriev/go-cwa-home/models"
)

type httpVerificationAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPVerificationAdapter constructs an HTTP/REST implementation of
// [VerificationAdapter]. The base URL is normalised from
// adapterCfg.HTTPAddress ("localhost:8080" becomes "http://localhost:8080").
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed.
func NewHTTPVerificationAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (VerificationAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpVerificationAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RegisterTest implements [VerificationAdapter] via POST /api/registration.
func (h *httpVerificationAdapter) RegisterTest(ctx context.Context, guid string) (string, error) {
	var registration models.RegistrationResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegistrationRequest{GUID: guid}).
		SetResult(&registration).
		Post("/api/registration")
	if err != nil {
		return "", fmt.Errorf("register test request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Msg("test registration rejected")
		return "", err
	}

	if registration.RegistrationToken == "" {
		return "", fmt.Errorf("register test: empty registration token in response")
	}

	return registration.RegistrationToken, nil
}

// GetTestResult implements [VerificationAdapter] via POST /api/testresult.
func (h *httpVerificationAdapter) GetTestResult(ctx context.Context, registrationToken string) (models.TestResultResponse, error) {
	var result models.TestResultResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TestResultRequest{RegistrationToken: registrationToken}).
		SetResult(&result).
		Post("/api/testresult")
	if err != nil {
		return models.TestResultResponse{}, fmt.Errorf("test result request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TestResultResponse{}, err
	}

	return result, nil
}

// GetServerVersion implements [VerificationAdapter] via GET /api/version/.
func (h *httpVerificationAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
