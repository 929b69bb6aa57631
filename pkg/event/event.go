package event

import (
	"time"

	"github.com/browsermux/browsermux/pkg/models"
)

const (
	TypeSessionCreated   = "session.created"
	TypeSessionClosed    = "session.closed"
	TypeSessionRecovered = "session.recovered"
	TypeSessionReaped    = "session.reaped"
)

type Event interface {
	EventType() string
}

type SessionEvent struct {
	Type string            `json:"type"`
	ID   string            `json:"id"`
	Kind models.EngineKind `json:"kind,omitempty"`
	User string            `json:"user,omitempty"`
	At   time.Time         `json:"at"`
}

func (e SessionEvent) EventType() string {
	return e.Type
}
