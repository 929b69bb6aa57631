package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/browsermux/browsermux/internal/common/clock"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

const recordExt = ".json"

var validID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Record is the durable snapshot of a session, everything needed to recreate
// it after a restart.
type Record struct {
	ID             string            `json:"id"`
	Kind           models.EngineKind `json:"kind"`
	Settings       models.Settings   `json:"settings"`
	URL            string            `json:"url,omitempty"`
	Cookies        []models.Cookie   `json:"cookies,omitempty"`
	LocalStorage   map[string]string `json:"localStorage,omitempty"`
	SessionStorage map[string]string `json:"sessionStorage,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	LastAccessedAt time.Time         `json:"lastAccessedAt"`
}

type Store interface {
	Save(rec *Record) error
	// Load returns ok=false when no record exists, which is a normal outcome.
	// Unreadable or malformed existing data is an error.
	Load(id string) (*Record, bool, error)
	Delete(id string) error
	List() ([]string, error)
	LoadAll() ([]*Record, error)
	CleanupOld(maxAge time.Duration) (int, error)
	Stats() (*dto.StoreStats, error)
	Export(path string) (int, error)
	Import(path string) (int, error)
}

// FileStore keeps one JSON file per session id under dir. The filesystem is
// injected so tests run against an in-memory fs.
type FileStore struct {
	fs  afero.Fs
	dir string
	now clock.NowFunc
	l   *zap.SugaredLogger
}

func NewFileStore(fs afero.Fs, dir string, now clock.NowFunc, l *zap.Logger) *FileStore {
	return &FileStore{
		fs:  fs,
		dir: dir,
		now: now,
		l:   l.Sugar(),
	}
}

func (s *FileStore) Save(rec *Record) error {
	if err := checkID(rec.ID); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create session store directory")
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to serialize session %s", rec.ID)
	}
	if err := afero.WriteFile(s.fs, s.recordPath(rec.ID), data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write session %s", rec.ID)
	}
	return nil
}

func (s *FileStore) Load(id string) (*Record, bool, error) {
	if err := checkID(id); err != nil {
		return nil, false, err
	}
	data, err := afero.ReadFile(s.fs, s.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to read session %s", id)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, errors.Wrapf(err, "failed to parse session %s", id)
	}
	return &rec, true, nil
}

func (s *FileStore) Delete(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.fs.Remove(s.recordPath(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete session %s", id)
	}
	return nil
}

func (s *FileStore) List() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to list session store")
	}
	var ids []string
	for _, fi := range infos {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), recordExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(fi.Name(), recordExt))
	}
	return ids, nil
}

func (s *FileStore) LoadAll() ([]*Record, error) {
	ids, err := s.List()
	if err != nil {
		return nil, err
	}
	recs := make([]*Record, 0, len(ids))
	for _, id := range ids {
		rec, ok, err := s.Load(id)
		if err != nil {
			// one corrupt record must not sink the whole load
			s.l.Warnw("skipping unreadable session record", zap.String("session_id", id), zap.Error(err))
			continue
		}
		if ok {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (s *FileStore) CleanupOld(maxAge time.Duration) (int, error) {
	recs, err := s.LoadAll()
	if err != nil {
		return 0, err
	}
	cutoff := s.now().Add(-maxAge)
	deleted := 0
	for _, rec := range recs {
		if rec.LastAccessedAt.Before(cutoff) {
			if err := s.Delete(rec.ID); err != nil {
				s.l.Warnw("failed to delete expired session record", zap.String("session_id", rec.ID), zap.Error(err))
				continue
			}
			deleted++
		}
	}
	return deleted, nil
}

func (s *FileStore) Stats() (*dto.StoreStats, error) {
	recs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	stats := &dto.StoreStats{
		Total:  len(recs),
		ByKind: make(map[models.EngineKind]int),
	}
	var oldest, newest time.Time
	for _, rec := range recs {
		stats.ByKind[rec.Kind]++
		if fi, err := s.fs.Stat(s.recordPath(rec.ID)); err == nil {
			stats.TotalBytes += fi.Size()
		}
		if oldest.IsZero() || rec.LastAccessedAt.Before(oldest) {
			oldest = rec.LastAccessedAt
			stats.OldestID = rec.ID
		}
		if newest.IsZero() || rec.LastAccessedAt.After(newest) {
			newest = rec.LastAccessedAt
			stats.NewestID = rec.ID
		}
	}
	return stats, nil
}

func (s *FileStore) Export(path string) (int, error) {
	recs, err := s.LoadAll()
	if err != nil {
		return 0, err
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return 0, errors.Wrap(err, "failed to serialize session records")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return 0, errors.Wrap(err, "failed to create export directory")
		}
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return 0, errors.Wrapf(err, "failed to write export file %s", path)
	}
	return len(recs), nil
}

func (s *FileStore) Import(path string) (int, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read import file %s", path)
	}
	var recs []*Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return 0, errors.Wrapf(err, "failed to parse import file %s", path)
	}
	imported := 0
	for _, rec := range recs {
		if err := s.Save(rec); err != nil {
			// keep going, a bad record must not abort the batch
			s.l.Warnw("failed to import session record", zap.String("session_id", rec.ID), zap.Error(err))
			continue
		}
		imported++
	}
	return imported, nil
}

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.dir, id+recordExt)
}

func checkID(id string) error {
	if !validID.MatchString(id) {
		return models.NewBadRequestError(errors.Errorf("invalid session id %q", id))
	}
	return nil
}
