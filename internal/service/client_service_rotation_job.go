package service

import (
	"context"
	"sync"
	"time"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
)

// DefaultRotationCheckInterval is how often the cadence check runs.
const DefaultRotationCheckInterval = 6 * time.Hour

// DefaultRotationThreshold is the key age past which the check rotates.
const DefaultRotationThreshold = 30 * 24 * time.Hour

type rotationJob struct {
	keys ClientKeyService
	log  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRotationJob creates a rotationJob that calls keys.MaybeRotate on a
// ticker. The job is idle until Start is called.
func NewRotationJob(keys ClientKeyService, log *logger.Logger) RotationJob {
	return &rotationJob{keys: keys, log: log}
}

// Start implements RotationJob. It stops any previously running job, then
// launches a background goroutine that checks the key age every interval.
// Zero or negative interval and threshold fall back to the defaults. One
// check also runs immediately so a long-offline client does not wait a full
// interval for its overdue rotation. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *rotationJob) Start(ctx context.Context, interval, threshold time.Duration) {
	if interval <= 0 {
		interval = DefaultRotationCheckInterval
	}
	if threshold <= 0 {
		threshold = DefaultRotationThreshold
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.check(jobCtx, threshold)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx, threshold)
			}
		}
	}()
}

func (j *rotationJob) check(ctx context.Context, threshold time.Duration) {
	rotated, err := j.keys.MaybeRotate(ctx, threshold)
	if err != nil {
		j.log.Warn().Err(err).Msg("scheduled rotation failed")
		return
	}
	if rotated {
		j.log.Info().Msg("scheduled transport key rotation completed")
	}
}

// Stop implements RotationJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *rotationJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
