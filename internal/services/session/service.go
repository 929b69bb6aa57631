package session

import (
	"context"
	"time"

	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

// CreateOptions carries everything a session creation needs: the optional
// caller-supplied id, the settings profile to fill defaults from, explicit
// settings overrides, and the admission attribution.
type CreateOptions struct {
	ID       string          `json:"id,omitempty"`
	Profile  string          `json:"profile,omitempty"`
	Settings models.Settings `json:"settings,omitempty"`
	UserID   string          `json:"userId,omitempty"`
	Priority int             `json:"priority,omitempty"`
}

type Service interface {
	CreateSession(ctx context.Context, opts CreateOptions) (string, error)
	GetSession(id string) (*Session, error)
	EnsureSession(ctx context.Context, id string, opts CreateOptions) (*Session, error)
	CloseSession(ctx context.Context, id string) error
	ListSessions() []dto.SessionInfo
	CleanupIdleSessions(maxIdle time.Duration) int
	SnapshotSession(ctx context.Context, id string) error
	RecoverSession(ctx context.Context, id string) (string, error)
	RecoverAllSessions(ctx context.Context) *dto.RecoveryReport
	Len() int
}
