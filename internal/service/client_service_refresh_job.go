package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/logger"
)

type refreshJob struct {
	refresher DeviceStateRefresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that calls refresher.RefreshDeviceState once
// on Start and then every interval. A non-positive interval defaults to 5
// minutes. The job is idle until Start is called.
func NewRefreshJob(refresher DeviceStateRefresher, interval time.Duration, logger *logger.Logger) BackgroundJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &refreshJob{
		refresher: refresher,
		interval:  interval,
		logger:    logger.WithComponent("refresh-job"),
	}
}

// Start implements [BackgroundJob]. The goroutine exits when ctx is
// cancelled or Stop is called. Refresh errors are logged and do not stop the
// job.
func (j *refreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.refresh(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

func (j *refreshJob) refresh(ctx context.Context) {
	if err := j.refresher.RefreshDeviceState(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Msg("periodic refresh failed")
	}
}

// Stop implements [BackgroundJob]. Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
