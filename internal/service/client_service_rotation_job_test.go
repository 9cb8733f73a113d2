// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

// spyKeyService counts MaybeRotate calls and lets tests inject a result.
type spyKeyService struct {
	calls   atomic.Int64
	rotated bool
	err     error
}

func (s *spyKeyService) MaybeRotate(context.Context, time.Duration) (bool, error) {
	s.calls.Add(1)
	return s.rotated, s.err
}

func (s *spyKeyService) State() SessionState                { return StateReady }
func (s *spyKeyService) Record() (models.SessionRecord, error) {
	return models.SessionRecord{}, nil
}
func (s *spyKeyService) InstallSession(context.Context, models.SessionRecord, []byte) error {
	return nil
}
func (s *spyKeyService) Clear(context.Context) error               { return nil }
func (s *spyKeyService) SignAsIdentity([]byte) ([]byte, error)     { return nil, nil }
func (s *spyKeyService) OpenEnvelope(models.TransitEnvelope) ([]byte, error) {
	return nil, nil
}
func (s *spyKeyService) RotateTransportKey(context.Context) ([]NotifyFailure, error) {
	return nil, nil
}
func (s *spyKeyService) ApplyIncomingRotation(context.Context, models.TransportKeyRotatedEvent) error {
	return nil
}

// ── NewRotationJob ───────────────────────────────────────────────────────────

func TestNewRotationJob_ReturnsInterface(t *testing.T) {
	spy := &spyKeyService{}
	job := NewRotationJob(spy, logger.NewLogger("test"))
	require.NotNil(t, job)

	var _ RotationJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRotationJob_Start_ChecksImmediately(t *testing.T) {
	spy := &spyKeyService{}
	job := NewRotationJob(spy, logger.NewLogger("test"))

	// a long interval isolates the immediate check from ticker fires
	job.Start(context.Background(), time.Hour, time.Hour)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return spy.calls.Load() == 1
	}, time.Second, 5*time.Millisecond, "one check must run right at start")
}

func TestRotationJob_Start_ChecksOnTicker(t *testing.T) {
	spy := &spyKeyService{}
	job := NewRotationJob(spy, logger.NewLogger("test"))

	job.Start(context.Background(), 10*time.Millisecond, time.Hour)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticker checks, got %d", got)
}

func TestRotationJob_Stop_StopsChecks(t *testing.T) {
	spy := &spyKeyService{}
	job := NewRotationJob(spy, logger.NewLogger("test"))

	job.Start(context.Background(), 10*time.Millisecond, time.Hour)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load(), "no checks may run after Stop returns")
}

func TestRotationJob_Stop_WithoutStart(t *testing.T) {
	job := NewRotationJob(&spyKeyService{}, logger.NewLogger("test"))

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

func TestRotationJob_Restart_ReplacesPreviousJob(t *testing.T) {
	spy := &spyKeyService{}
	job := NewRotationJob(spy, logger.NewLogger("test"))

	job.Start(context.Background(), time.Hour, time.Hour)
	job.Start(context.Background(), 10*time.Millisecond, time.Hour)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	// both immediate checks plus ticker fires from the second job only
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestRotationJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyKeyService{}
	job := NewRotationJob(spy, logger.NewLogger("test"))

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond, time.Hour)
	time.Sleep(25 * time.Millisecond)
	cancel()

	time.Sleep(15 * time.Millisecond)
	after := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load(), "no checks may run after the context is cancelled")
}

func TestRotationJob_CheckErrorDoesNotStopJob(t *testing.T) {
	spy := &spyKeyService{err: errors.New("relay unreachable")}
	job := NewRotationJob(spy, logger.NewLogger("test"))

	job.Start(context.Background(), 10*time.Millisecond, time.Hour)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3), "an error check must not kill the ticker loop")
}

func TestRotationJob_DefaultsApplied(t *testing.T) {
	spy := &spyKeyService{}
	job := NewRotationJob(spy, logger.NewLogger("test"))

	// zero values fall back to the 6h/30d defaults; only the immediate
	// check is observable here
	job.Start(context.Background(), 0, 0)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return spy.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
}
