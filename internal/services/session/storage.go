package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/browsermux/browsermux/pkg/models"
)

var ErrStorageShutdown = errors.New("session storage is shutdown")

type SessionStorage interface {
	// Add registers the session, enforcing maxSessions (0 disables the cap)
	// under the storage lock so concurrent creates can't overshoot it.
	Add(sess *Session, maxSessions int) error
	Get(id string) (*Session, bool)
	List() []*Session
	// Delete reports whether the id was present, making removal idempotent:
	// whichever of the close and disconnect paths gets here first wins.
	Delete(id string) bool
	// DeleteIf removes the id only while it still maps to this exact session,
	// so a stale event for a previous holder of a reused id is a no-op.
	DeleteIf(id string, sess *Session) bool
	Len() int
	IsShutdown() bool
}

type LocalSessionStorage struct {
	sessions map[string]*Session
	shutdown bool
	mtx      sync.RWMutex
	l        *zap.SugaredLogger
}

func NewLocalSessionStorage(l *zap.Logger) *LocalSessionStorage {
	return &LocalSessionStorage{
		sessions: make(map[string]*Session),
		l:        l.Sugar(),
	}
}

func (s *LocalSessionStorage) Add(sess *Session, maxSessions int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.shutdown {
		return ErrStorageShutdown
	}
	if _, ok := s.sessions[sess.ID()]; ok {
		return models.NewAlreadyExistsError(errors.Errorf("session %s already exists", sess.ID()))
	}
	if maxSessions > 0 && len(s.sessions) >= maxSessions {
		return models.NewSessionLimitError(
			errors.Errorf("session limit reached (%d), close a session first", maxSessions))
	}
	s.sessions[sess.ID()] = sess
	return nil
}

func (s *LocalSessionStorage) Get(id string) (*Session, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *LocalSessionStorage) List() []*Session {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	res := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		res = append(res, sess)
	}
	return res
}

func (s *LocalSessionStorage) Delete(id string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *LocalSessionStorage) DeleteIf(id string, sess *Session) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if cur, ok := s.sessions[id]; !ok || cur != sess {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *LocalSessionStorage) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.sessions)
}

func (s *LocalSessionStorage) IsShutdown() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.shutdown
}

func (s *LocalSessionStorage) Shutdown(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.shutdown = true

	done := make(chan struct{})
	var wg sync.WaitGroup
	s.l.Infof("session storage is shutting down, closing %d sessions", len(s.sessions))
	for id, sess := range s.sessions {
		wg.Add(1)
		go func(sess *Session) {
			defer wg.Done()
			_ = sess.Browser().Close(ctx)
			sess.ReleaseCapacity()
		}(sess)
		delete(s.sessions, id)
	}

	go func() {
		defer close(done)
		wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}
	return nil
}
