// Package reaper runs the periodic housekeeping tick: it reports resource
// usage and, when auto-cleanup is enabled, closes sessions idle beyond the
// configured threshold. Thresholds come from the governor's limits, the
// reaper is only the scheduling shell.
package reaper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/browsermux/browsermux/internal/services/resources"
	"github.com/browsermux/browsermux/pkg/models"
)

type IdleCleaner interface {
	CleanupIdleSessions(maxIdle time.Duration) int
}

type Reaper struct {
	cleaner IdleCleaner
	res     resources.ResourceService

	mtx    sync.Mutex
	limits models.Limits
	stop   chan struct{}
	done   chan struct{}
	l      *zap.SugaredLogger
}

func NewReaper(cleaner IdleCleaner, res resources.ResourceService, limits models.Limits, l *zap.Logger) *Reaper {
	return &Reaper{
		cleaner: cleaner,
		res:     res,
		limits:  limits,
		l:       l.Sugar(),
	}
}

func (r *Reaper) Start() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.startLocked()
}

// Restart swaps the cadence after a limits update. In-flight sweeps finish
// on the old schedule.
func (r *Reaper) Restart(limits models.Limits) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	changed := limits.CleanupInterval != r.limits.CleanupInterval || limits.AutoCleanup != r.limits.AutoCleanup
	r.limits = limits
	if !changed {
		return
	}

	r.stopLocked()
	r.startLocked()
}

func (r *Reaper) Stop(_ context.Context) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.stopLocked()
	return nil
}

func (r *Reaper) startLocked() {
	if r.stop != nil {
		return
	}
	interval := r.limits.CleanupInterval
	if interval <= 0 {
		r.l.Info("periodic cleanup reporter disabled")
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	r.stop, r.done = stop, done
	r.l.Infof("starting cleanup reporter: interval=%v, auto_cleanup=%v", interval, r.limits.AutoCleanup)

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.tick()
			}
		}
	}()
}

func (r *Reaper) stopLocked() {
	if r.stop == nil {
		return
	}
	close(r.stop)
	<-r.done
	r.stop, r.done = nil, nil
}

func (r *Reaper) tick() {
	usage := r.res.GetResourceUsage()
	r.l.Infow("resource usage",
		zap.Int("active_instances", usage.ActiveInstances),
		zap.Int("active_sessions", usage.ActiveSessions),
		zap.Int("queue_depth", usage.QueueDepth),
		zap.Int("memory_mb", usage.MemoryMB))

	r.mtx.Lock()
	autoCleanup := r.limits.AutoCleanup
	idleTimeout := r.limits.SessionIdleTimeout
	memLimit := r.limits.MemoryLimitMB
	r.mtx.Unlock()

	if memLimit > 0 && usage.MemoryMB > memLimit {
		r.l.Warnf("memory usage %dMB exceeds configured limit %dMB", usage.MemoryMB, memLimit)
	}

	if autoCleanup && idleTimeout > 0 {
		if closed := r.cleaner.CleanupIdleSessions(idleTimeout); closed > 0 {
			r.l.Infof("idle sweep closed %d sessions", closed)
		}
	}
}
