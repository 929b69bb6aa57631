package limit

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/browsermux/browsermux/pkg/admission"
	"github.com/browsermux/browsermux/pkg/models"
)

type pending struct {
	id       uint64
	userID   string
	priority int
	enqueued time.Time
	timer    *time.Timer
	done     chan error
}

// LimitGovernor serializes all capacity accounting behind a single mutex.
// Queued requests are ordered by (priority desc, enqueue order asc), each
// paired with its own timeout timer. An entry is resolved exactly once:
// either granted during reprocessing, expired by its timer, rejected, or
// cleared, all of which remove it from the queue in the same critical
// section.
type LimitGovernor struct {
	m            sync.Mutex
	limits       models.Limits
	active       int
	perUser      map[string]int
	queue        []*pending
	nextID       uint64
	reprocessing bool
	listeners    []func(models.Limits)
	l            *zap.SugaredLogger
}

func NewLimitGovernor(limits models.Limits, l *zap.Logger) *LimitGovernor {
	logger := l.Sugar()
	logger.Infow("initializing admission governor",
		zap.Int("max_instances", limits.MaxInstances),
		zap.Int("max_per_user", limits.MaxPerUser),
		zap.Int("queue_size", limits.QueueSize),
		zap.Duration("queue_timeout", limits.QueueTimeout))
	return &LimitGovernor{
		limits:  limits,
		perUser: make(map[string]int),
		l:       logger,
	}
}

func (g *LimitGovernor) RequestLaunch(ctx context.Context, req admission.Request) error {
	g.m.Lock()
	// fast path only when nobody is already waiting, otherwise the new
	// request competes with the queue on priority during reprocessing
	if len(g.queue) == 0 && g.capacityLocked() && g.userBelowLimitLocked(req.UserID) {
		g.grantLocked(req.UserID)
		g.m.Unlock()
		return nil
	}

	if !g.userBelowLimitLocked(req.UserID) {
		defer g.m.Unlock()
		return models.NewUserLimitError(
			errors.Errorf("user %s reached the per-user instance limit (%d)", req.UserID, g.limits.MaxPerUser))
	}

	if len(g.queue) >= g.limits.QueueSize {
		defer g.m.Unlock()
		return models.NewQueueFullError(errors.New(g.formatError("admission queue is full")))
	}

	g.nextID++
	p := &pending{
		id:       g.nextID,
		userID:   req.UserID,
		priority: req.Priority,
		enqueued: time.Now(),
		done:     make(chan error, 1),
	}
	g.insertLocked(p)
	p.timer = time.AfterFunc(g.limits.QueueTimeout, func() { g.expire(p) })
	g.l.Debugf("launch request %d queued: priority=%d, queue size=%d", p.id, p.priority, len(g.queue))

	// capacity might be free while the queue is not empty, let the most
	// eligible waiter (possibly this one) take it
	g.reprocessLocked()
	g.m.Unlock()

	select {
	case err := <-p.done:
		return err
	case <-ctx.Done():
		return g.abandon(p, ctx.Err())
	}
}

func (g *LimitGovernor) Release(userID string) {
	g.m.Lock()
	defer g.m.Unlock()

	if g.active < 1 {
		g.l.Warnf("instance count underrun detected, resetting to 0: active=%d", g.active)
		g.active = 0
	} else {
		g.active--
	}
	if userID != "" {
		if g.perUser[userID] <= 1 {
			delete(g.perUser, userID)
		} else {
			g.perUser[userID]--
		}
	}
	g.l.Debugf("capacity released: active=%d", g.active)

	g.reprocessLocked()
}

func (g *LimitGovernor) Usage() admission.Usage {
	g.m.Lock()
	active, depth := g.active, len(g.queue)
	g.m.Unlock()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return admission.Usage{
		ActiveInstances: active,
		QueueDepth:      depth,
		MemoryMB:        int(ms.HeapAlloc >> 20),
	}
}

func (g *LimitGovernor) Limits() models.Limits {
	g.m.Lock()
	defer g.m.Unlock()
	return g.limits
}

func (g *LimitGovernor) UpdateLimits(patch models.LimitsPatch) models.Limits {
	g.m.Lock()
	g.limits = patch.Apply(g.limits)
	updated := g.limits
	// raised limits may unblock queued requests right away
	g.reprocessLocked()
	listeners := make([]func(models.Limits), len(g.listeners))
	copy(listeners, g.listeners)
	g.m.Unlock()

	g.l.Infow("resource limits updated",
		zap.Int("max_instances", updated.MaxInstances),
		zap.Int("max_per_user", updated.MaxPerUser),
		zap.Bool("auto_cleanup", updated.AutoCleanup),
		zap.Duration("cleanup_interval", updated.CleanupInterval))
	for _, fn := range listeners {
		fn(updated)
	}
	return updated
}

func (g *LimitGovernor) OnLimitsUpdate(fn func(models.Limits)) {
	g.m.Lock()
	defer g.m.Unlock()
	g.listeners = append(g.listeners, fn)
}

func (g *LimitGovernor) ClearQueue() int {
	g.m.Lock()
	defer g.m.Unlock()

	cleared := len(g.queue)
	for _, p := range g.queue {
		p.timer.Stop()
		p.done <- models.NewServiceUnavailableError(errors.New("admission queue cleared"))
	}
	g.queue = nil
	if cleared > 0 {
		g.l.Infof("admission queue cleared, %d requests resolved", cleared)
	}
	return cleared
}

func (g *LimitGovernor) QueueDepth() int {
	g.m.Lock()
	defer g.m.Unlock()
	return len(g.queue)
}

func (g *LimitGovernor) Active() int {
	g.m.Lock()
	defer g.m.Unlock()
	return g.active
}

// reprocessLocked pops eligible waiters while capacity remains. Callers must
// hold the mutex. The flag guards against overlapping passes when a resolved
// waiter's code path re-enters the governor.
func (g *LimitGovernor) reprocessLocked() {
	if g.reprocessing {
		return
	}
	g.reprocessing = true
	for len(g.queue) > 0 && g.capacityLocked() {
		p := g.queue[0]
		g.queue = g.queue[1:]
		p.timer.Stop()
		if !g.userBelowLimitLocked(p.userID) {
			p.done <- models.NewUserLimitError(
				errors.Errorf("user %s reached the per-user instance limit (%d)", p.userID, g.limits.MaxPerUser))
			continue
		}
		g.grantLocked(p.userID)
		g.l.Debugf("launch request %d granted from queue: active=%d, queue size=%d", p.id, g.active, len(g.queue))
		p.done <- nil
	}
	g.reprocessing = false
}

// expire fires from the entry's timer. Losing the race against a grant or a
// clear is fine, the entry is simply no longer queued.
func (g *LimitGovernor) expire(p *pending) {
	g.m.Lock()
	defer g.m.Unlock()
	if !g.removeLocked(p) {
		return
	}
	g.l.Debugf("launch request %d timed out after %v in queue", p.id, time.Since(p.enqueued))
	p.done <- models.NewTimeoutError(errors.New(g.formatError("timed out waiting for browser capacity")))
}

// abandon handles caller context cancellation. If the entry was already
// resolved the outcome is honored, including a last-moment grant.
func (g *LimitGovernor) abandon(p *pending, ctxErr error) error {
	g.m.Lock()
	defer g.m.Unlock()
	if g.removeLocked(p) {
		p.timer.Stop()
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return models.NewTimeoutError(errors.Wrap(ctxErr, g.formatError("launch request wait failed")))
		}
		return errors.Wrap(ctxErr, g.formatError("launch request wait cancelled"))
	}
	return <-p.done
}

func (g *LimitGovernor) grantLocked(userID string) {
	g.active++
	if userID != "" {
		g.perUser[userID]++
	}
	g.l.Debugf("capacity granted: active=%d", g.active)
}

func (g *LimitGovernor) capacityLocked() bool {
	return g.limits.MaxInstances <= 0 || g.active < g.limits.MaxInstances
}

func (g *LimitGovernor) userBelowLimitLocked(userID string) bool {
	if userID == "" || g.limits.MaxPerUser <= 0 {
		return true
	}
	return g.perUser[userID] < g.limits.MaxPerUser
}

func (g *LimitGovernor) insertLocked(p *pending) {
	at := len(g.queue)
	for i, q := range g.queue {
		if p.priority > q.priority {
			at = i
			break
		}
	}
	g.queue = append(g.queue, nil)
	copy(g.queue[at+1:], g.queue[at:])
	g.queue[at] = p
}

func (g *LimitGovernor) removeLocked(p *pending) bool {
	for i, q := range g.queue {
		if q == p {
			g.queue = append(g.queue[:i], g.queue[i+1:]...)
			return true
		}
	}
	return false
}

func (g *LimitGovernor) formatError(msg string) string {
	return fmt.Sprintf("%s: active=%d, limit=%d, queue size=%d", msg, g.active, g.limits.MaxInstances, len(g.queue))
}
