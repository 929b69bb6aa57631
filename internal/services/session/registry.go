package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/browsermux/browsermux/internal/common/clock"
	"github.com/browsermux/browsermux/internal/services/persistence"
	"github.com/browsermux/browsermux/pkg/admission"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/engine"
	"github.com/browsermux/browsermux/pkg/event"
	"github.com/browsermux/browsermux/pkg/models"
	"github.com/browsermux/browsermux/pkg/profiles"
)

const (
	blankURL = "about:blank"

	recoverParallelism = 4
)

type Registry struct {
	eng           engine.Engine
	gov           admission.Governor
	store         persistence.Store
	catalog       profiles.Catalog
	storage       SessionStorage
	eb            event.EventBroker
	defaultID     string
	createTimeout time.Duration
	counter       atomic.Int64
	now           clock.NowFunc
	l             *zap.SugaredLogger
}

func NewRegistry(
	eng engine.Engine,
	gov admission.Governor,
	store persistence.Store,
	catalog profiles.Catalog,
	storage SessionStorage,
	eb event.EventBroker,
	defaultID string,
	createTimeout time.Duration,
	now clock.NowFunc,
	l *zap.Logger,
) *Registry {
	return &Registry{
		eng:           eng,
		gov:           gov,
		store:         store,
		catalog:       catalog,
		storage:       storage,
		eb:            eb,
		defaultID:     defaultID,
		createTimeout: createTimeout,
		now:           now,
		l:             l.Sugar(),
	}
}

func (r *Registry) CreateSession(ctx context.Context, opts CreateOptions) (string, error) {
	if r.storage.IsShutdown() {
		return "", ErrStorageShutdown
	}

	id := opts.ID
	if id == "" {
		id = fmt.Sprintf("session-%d", r.counter.Add(1))
	}
	// fast duplicate check, storage.Add below is the authoritative one
	if _, ok := r.storage.Get(id); ok {
		return "", models.NewAlreadyExistsError(errors.Errorf("session %s already exists", id))
	}

	// fast rejection before admission, storage.Add re-validates the cap
	// atomically under its own lock
	limits := r.gov.Limits()
	if limits.MaxSessions > 0 && r.storage.Len() >= limits.MaxSessions {
		return "", models.NewSessionLimitError(
			errors.Errorf("session limit reached (%d), close a session first", limits.MaxSessions))
	}

	settings, err := r.catalog.Resolve(opts.Profile, opts.Settings)
	if err != nil {
		return "", err
	}

	if err := r.gov.RequestLaunch(ctx, admission.Request{UserID: opts.UserID, Priority: opts.Priority}); err != nil {
		return "", err
	}
	release := func() { r.gov.Release(opts.UserID) }

	start := time.Now()
	sess, err := r.launch(ctx, id, settings, release)
	if err != nil {
		release()
		return "", err
	}

	if err := r.storage.Add(sess, limits.MaxSessions); err != nil {
		_ = sess.Browser().Close(context.Background())
		sess.ReleaseCapacity()
		return "", err
	}

	// persistence is best-effort and must never delay or fail creation
	go r.persist(sess)
	r.publish(event.TypeSessionCreated, sess, opts.UserID)

	r.l.With(
		zap.String("session_id", id),
		zap.String("engine", string(settings.Kind)),
	).Infof("session is ready in %v", time.Since(start))
	return id, nil
}

func (r *Registry) GetSession(id string) (*Session, error) {
	if id == "" {
		id = r.defaultID
	}
	sess, ok := r.storage.Get(id)
	if !ok {
		return nil, models.NewNotFoundError(errors.Errorf("session %s doesn't exist", id))
	}
	sess.Touch(r.now())
	return sess, nil
}

func (r *Registry) EnsureSession(ctx context.Context, id string, opts CreateOptions) (*Session, error) {
	if id == "" {
		id = r.defaultID
	}

	if sess, ok := r.storage.Get(id); ok {
		if sess.Browser().IsConnected() {
			sess.Touch(r.now())
			return sess, nil
		}
		// stale handle, recreate under the same id
		r.l.Warnw("session engine is disconnected, recreating", zap.String("session_id", id))
		if r.storage.DeleteIf(id, sess) {
			_ = sess.Browser().Close(context.Background())
			sess.ReleaseCapacity()
		}
	}

	opts.ID = id
	if _, err := r.CreateSession(ctx, opts); err != nil {
		return nil, err
	}
	sess, ok := r.storage.Get(id)
	if !ok {
		return nil, models.NewInternalServerError(errors.Errorf("session %s vanished right after creation", id))
	}
	return sess, nil
}

func (r *Registry) CloseSession(ctx context.Context, id string) error {
	return r.close(ctx, id, event.TypeSessionClosed)
}

func (r *Registry) ListSessions() []dto.SessionInfo {
	sessions := r.storage.List()
	infos := make([]dto.SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		infos = append(infos, dto.SessionInfo{
			ID:             sess.ID(),
			Kind:           sess.Kind(),
			URL:            sess.Page().URL(),
			CreatedAt:      sess.Created(),
			LastAccessedAt: sess.LastAccessed(),
		})
	}
	return infos
}

func (r *Registry) CleanupIdleSessions(maxIdle time.Duration) int {
	now := r.now()
	closed := 0
	for _, sess := range r.storage.List() {
		if sess.ID() == r.defaultID {
			continue
		}
		if idle := now.Sub(sess.LastAccessed()); idle > maxIdle {
			if err := r.close(context.Background(), sess.ID(), event.TypeSessionReaped); err != nil {
				// already gone, nothing to count
				continue
			}
			r.l.Infow("closed idle session", zap.String("session_id", sess.ID()), zap.Duration("idle", idle))
			closed++
		}
	}
	return closed
}

func (r *Registry) SnapshotSession(ctx context.Context, id string) error {
	sess, ok := r.storage.Get(id)
	if !ok {
		return models.NewNotFoundError(errors.Errorf("session %s doesn't exist", id))
	}
	rec, err := r.buildRecord(ctx, sess)
	if err != nil {
		return errors.Wrapf(err, "failed to snapshot session %s", id)
	}
	if err := r.store.Save(rec); err != nil {
		return errors.Wrapf(err, "failed to save session %s", id)
	}
	return nil
}

func (r *Registry) RecoverSession(ctx context.Context, id string) (string, error) {
	rec, ok, err := r.store.Load(id)
	if err != nil {
		return "", errors.Wrapf(err, "failed to load persisted session %s", id)
	}
	if !ok {
		return "", models.NewNotFoundError(errors.Errorf("no persisted session %s", id))
	}

	if _, err := r.CreateSession(ctx, CreateOptions{ID: id, Settings: rec.Settings}); err != nil {
		return "", errors.Wrapf(err, "failed to recreate session %s", id)
	}

	if err := r.restoreState(ctx, id, rec); err != nil {
		// no half-recovered sessions, undo the creation
		_ = r.close(context.Background(), id, event.TypeSessionClosed)
		return "", errors.Wrapf(err, "failed to restore state of session %s", id)
	}

	if sess, ok := r.storage.Get(id); ok {
		r.publish(event.TypeSessionRecovered, sess, "")
	}
	r.l.Infow("session recovered", zap.String("session_id", id), zap.String("url", rec.URL))
	return id, nil
}

func (r *Registry) RecoverAllSessions(ctx context.Context) *dto.RecoveryReport {
	report := &dto.RecoveryReport{
		Recovered: []string{},
		Failed:    []dto.RecoveryFailure{},
	}
	ids, err := r.store.List()
	if err != nil {
		r.l.Warnw("failed to enumerate persisted sessions", zap.Error(err))
		return report
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(recoverParallelism)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			_, err := r.RecoverSession(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, dto.RecoveryFailure{ID: id, Error: err.Error()})
			} else {
				report.Recovered = append(report.Recovered, id)
			}
			return nil
		})
	}
	_ = eg.Wait()

	sort.Strings(report.Recovered)
	sort.Slice(report.Failed, func(i, j int) bool { return report.Failed[i].ID < report.Failed[j].ID })
	return report
}

func (r *Registry) Len() int {
	return r.storage.Len()
}

func (r *Registry) launch(ctx context.Context, id string, settings models.Settings, release func()) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.createTimeout)
	defer cancel()

	br, err := r.eng.Launch(ctx, settings.Kind, settings.IsHeadless())
	if err != nil {
		return nil, models.WrapTimeoutErr(err, fmt.Sprintf("failed to launch %s engine for session %s", settings.Kind, id))
	}

	bctx, err := br.NewContext(ctx, contextOptions(settings))
	if err != nil {
		_ = br.Close(context.Background())
		return nil, models.WrapTimeoutErr(err, fmt.Sprintf("failed to create browser context for session %s", id))
	}

	page, err := bctx.NewPage(ctx)
	if err != nil {
		_ = br.Close(context.Background())
		return nil, models.WrapTimeoutErr(err, fmt.Sprintf("failed to open page for session %s", id))
	}

	sess := NewSession(id, settings, br, bctx, page, r.now(), release)
	page.OnConsole(func(e engine.ConsoleEntry) {
		sess.AppendLog(LogEntry{Time: r.now(), Level: e.Level, Text: e.Text})
	})
	page.OnPageError(func(err error) {
		sess.AppendLog(LogEntry{Time: r.now(), Level: models.LogLevelError, Text: err.Error()})
	})
	br.OnDisconnected(func() {
		r.handleDisconnect(sess)
	})
	return sess, nil
}

// close removes the session first so a concurrent close or disconnect of the
// same id resolves to exactly one winner, then tears the browser down
// best-effort.
func (r *Registry) close(ctx context.Context, id string, eventType string) error {
	sess, ok := r.storage.Get(id)
	if !ok {
		return models.NewNotFoundError(errors.Errorf("session %s doesn't exist", id))
	}
	if !r.storage.DeleteIf(id, sess) {
		return models.NewNotFoundError(errors.Errorf("session %s doesn't exist", id))
	}

	for _, bctx := range sess.Browser().Contexts() {
		for _, page := range bctx.Pages() {
			if err := page.Close(ctx); err != nil {
				r.l.Warnw("failed to close page", zap.String("session_id", id), zap.Error(err))
			}
		}
	}
	if err := sess.Browser().Close(ctx); err != nil {
		r.l.Warnw("failed to close browser", zap.String("session_id", id), zap.Error(err))
	}
	sess.ReleaseCapacity()

	r.publish(eventType, sess, "")
	r.l.Infow("session has been closed", zap.String("session_id", id))
	return nil
}

// handleDisconnect fires from the engine when a browser process goes away
// behind our back. The removal is keyed by session identity, not id: a late
// event from a previous holder of a reused id must not touch its successor.
func (r *Registry) handleDisconnect(sess *Session) {
	if !r.storage.DeleteIf(sess.ID(), sess) {
		return
	}
	sess.ReleaseCapacity()
	r.publish(event.TypeSessionClosed, sess, "")
	r.l.Warnw("session engine disconnected, session removed", zap.String("session_id", sess.ID()))
}

func (r *Registry) persist(sess *Session) {
	rec := &persistence.Record{
		ID:             sess.ID(),
		Kind:           sess.Kind(),
		Settings:       sess.Settings(),
		URL:            sess.Page().URL(),
		CreatedAt:      sess.Created(),
		LastAccessedAt: sess.LastAccessed(),
	}
	if err := r.store.Save(rec); err != nil {
		r.l.Warnw("failed to persist session", zap.String("session_id", sess.ID()), zap.Error(err))
	}
}

func (r *Registry) buildRecord(ctx context.Context, sess *Session) (*persistence.Record, error) {
	cookies, err := sess.Context().Cookies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cookies")
	}
	local, err := readStorage(ctx, sess.Page(), "localStorage")
	if err != nil {
		return nil, err
	}
	sessStore, err := readStorage(ctx, sess.Page(), "sessionStorage")
	if err != nil {
		return nil, err
	}
	return &persistence.Record{
		ID:             sess.ID(),
		Kind:           sess.Kind(),
		Settings:       sess.Settings(),
		URL:            sess.Page().URL(),
		Cookies:        cookies,
		LocalStorage:   local,
		SessionStorage: sessStore,
		CreatedAt:      sess.Created(),
		LastAccessedAt: sess.LastAccessed(),
	}, nil
}

func (r *Registry) restoreState(ctx context.Context, id string, rec *persistence.Record) error {
	sess, ok := r.storage.Get(id)
	if !ok {
		return errors.Errorf("session %s disappeared during recovery", id)
	}

	if rec.URL != "" && rec.URL != blankURL {
		if err := sess.Page().Navigate(ctx, rec.URL); err != nil {
			return errors.Wrapf(err, "failed to navigate to %s", rec.URL)
		}
	}
	if len(rec.Cookies) > 0 {
		if err := sess.Context().AddCookies(ctx, rec.Cookies); err != nil {
			return errors.Wrap(err, "failed to restore cookies")
		}
	}
	if err := writeStorage(ctx, sess.Page(), "localStorage", rec.LocalStorage); err != nil {
		return err
	}
	return writeStorage(ctx, sess.Page(), "sessionStorage", rec.SessionStorage)
}

func (r *Registry) publish(eventType string, sess *Session, user string) {
	if r.eb == nil {
		return
	}
	r.eb.Publish(event.SessionEvent{
		Type: eventType,
		ID:   sess.ID(),
		Kind: sess.Kind(),
		User: user,
		At:   r.now(),
	})
}

func contextOptions(s models.Settings) engine.ContextOptions {
	return engine.ContextOptions{
		Viewport:    s.Viewport,
		UserAgent:   s.UserAgent,
		Locale:      s.Locale,
		Timezone:    s.Timezone,
		Geolocation: s.Geolocation,
		Permissions: s.Permissions,
	}
}

func readStorage(ctx context.Context, page engine.Page, store string) (map[string]string, error) {
	script := fmt.Sprintf(`(() => {
		const out = {};
		for (let i = 0; i < window.%[1]s.length; i++) {
			const key = window.%[1]s.key(i);
			out[key] = window.%[1]s.getItem(key);
		}
		return out;
	})()`, store)
	res, err := page.Evaluate(ctx, script)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", store)
	}
	out := make(map[string]string)
	if m, ok := res.(map[string]interface{}); ok {
		for k, v := range m {
			if s, ok := v.(string); ok {
				out[k] = s
			}
		}
	}
	return out, nil
}

func writeStorage(ctx context.Context, page engine.Page, store string, data map[string]string) error {
	if len(data) == 0 {
		return nil
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s data", store)
	}
	script := fmt.Sprintf(`(() => {
		const data = %s;
		for (const [key, value] of Object.entries(data)) {
			window.%s.setItem(key, value);
		}
	})()`, encoded, store)
	if _, err := page.Evaluate(ctx, script); err != nil {
		return errors.Wrapf(err, "failed to restore %s", store)
	}
	return nil
}
