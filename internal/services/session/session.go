package session

import (
	"sync"
	"time"

	"github.com/browsermux/browsermux/pkg/engine"
	"github.com/browsermux/browsermux/pkg/models"
)

type LogEntry struct {
	Time  time.Time       `json:"time"`
	Level models.LogLevel `json:"level"`
	Text  string          `json:"text"`
}

// Session wraps one exclusively owned browser instance together with its
// context and page. The console buffer and last-accessed timestamp are the
// only mutable parts, both guarded by the session's own mutex.
type Session struct {
	id       string
	kind     models.EngineKind
	settings models.Settings
	br       engine.Browser
	bctx     engine.BrowserContext
	page     engine.Page
	created  time.Time

	mtx          sync.RWMutex
	lastAccessed time.Time
	console      []LogEntry

	releaseOnce sync.Once
	release     func()
}

func NewSession(
	id string,
	settings models.Settings,
	br engine.Browser,
	bctx engine.BrowserContext,
	page engine.Page,
	created time.Time,
	release func(),
) *Session {
	return &Session{
		id:           id,
		kind:         settings.Kind,
		settings:     settings,
		br:           br,
		bctx:         bctx,
		page:         page,
		created:      created,
		lastAccessed: created,
		release:      release,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Kind() models.EngineKind {
	return s.kind
}

func (s *Session) Settings() models.Settings {
	return s.settings
}

func (s *Session) Browser() engine.Browser {
	return s.br
}

func (s *Session) Context() engine.BrowserContext {
	return s.bctx
}

func (s *Session) Page() engine.Page {
	return s.page
}

func (s *Session) Created() time.Time {
	return s.created
}

func (s *Session) LastAccessed() time.Time {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.lastAccessed
}

func (s *Session) Touch(now time.Time) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.lastAccessed = now
}

// AppendLog records one console or page-error entry, insertion order is
// chronological. The buffer is unbounded here, callers decide whether to cap
// what they read.
func (s *Session) AppendLog(e LogEntry) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.console = append(s.console, e)
}

func (s *Session) ConsoleLog() []LogEntry {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	out := make([]LogEntry, len(s.console))
	copy(out, s.console)
	return out
}

// ReleaseCapacity invokes the admission release exactly once no matter how
// many of the close and disconnect paths race to it.
func (s *Session) ReleaseCapacity() {
	s.releaseOnce.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}
