package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	exitOK     = 0
	exitForced = 1
)

// ShutdownHook releases a resource during graceful shutdown. Hooks within a
// group run sequentially in reverse registration order, groups run in
// parallel.
type ShutdownHook func(ctx context.Context) error

type Handler struct {
	mtx     sync.Mutex
	groups  map[any][]ShutdownHook
	timeout time.Duration
	l       *zap.SugaredLogger
}

func NewHandler(timeout time.Duration, l *zap.Logger) *Handler {
	return &Handler{
		groups:  make(map[any][]ShutdownHook),
		timeout: timeout,
		l:       l.Sugar(),
	}
}

func (h *Handler) RegisterShutdownHook(group any, hook ShutdownHook) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.groups[group] = append(h.groups[group], hook)
}

// Start blocks until SIGINT or SIGTERM, runs the registered hooks and
// returns the process exit code. A second signal aborts the graceful
// shutdown immediately.
func (h *Handler) Start() int {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	sig := <-sigCh
	h.l.Infow("signal caught, shutting down...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	start := time.Now()
	select {
	case <-h.runHooks(ctx):
		h.l.Infof("graceful shutdown completed in %v", time.Since(start))
		return exitOK
	case <-ctx.Done():
		h.l.Warnf("shutdown hooks did not complete within %v, exiting immediately", h.timeout)
	case sig = <-sigCh:
		h.l.Infow("second signal caught, exiting immediately", zap.String("signal", sig.String()))
	}
	return exitForced
}

func (h *Handler) runHooks(ctx context.Context) <-chan struct{} {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	var wg sync.WaitGroup
	for group, hooks := range h.groups {
		wg.Add(1)
		go func(group any, hooks []ShutdownHook) {
			defer wg.Done()
			for i := len(hooks) - 1; i >= 0; i-- {
				if err := hooks[i](ctx); err != nil {
					h.l.Warnw("shutdown hook failed", zap.Any("group", group), zap.Error(err))
				}
			}
		}(group, hooks)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	return done
}
