package service

import (
	"github.com/MKhiriev/go-cwa-home/internal/adapter"
	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/store"
)

// ClientServices groups the home client services.
type ClientServices struct {
	SubmissionService SubmissionService
	RefreshJob        BackgroundJob
}

// NewClientServices wires the submission service and its refresh job.
func NewClientServices(storages *store.ClientStorages, verificationAdapter adapter.VerificationAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	submission := NewSubmissionService(storages.RegistrationRepository, verificationAdapter, logger)

	return &ClientServices{
		SubmissionService: submission,
		RefreshJob:        NewRefreshJob(submission, cfg.RefreshInterval, logger),
	}
}
