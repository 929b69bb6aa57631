package models

import "time"

// Limits is the process-wide resource limit configuration. Updates apply to
// all subsequently evaluated requests, already queued requests keep the
// deadline they were armed with.
type Limits struct {
	MaxInstances       int           `json:"maxInstances"`
	MaxPerUser         int           `json:"maxPerUser"`
	MaxSessions        int           `json:"maxSessions"`
	SessionIdleTimeout time.Duration `json:"sessionIdleTimeout"`
	QueueTimeout       time.Duration `json:"queueTimeout"`
	QueueSize          int           `json:"queueSize"`
	MemoryLimitMB      int           `json:"memoryLimitMB"`
	AutoCleanup        bool          `json:"autoCleanup"`
	CleanupInterval    time.Duration `json:"cleanupInterval"`
}

// LimitsPatch is a partial Limits update, nil fields keep the current value.
type LimitsPatch struct {
	MaxInstances       *int      `json:"maxInstances,omitempty"`
	MaxPerUser         *int      `json:"maxPerUser,omitempty"`
	MaxSessions        *int      `json:"maxSessions,omitempty"`
	SessionIdleTimeout *Duration `json:"sessionIdleTimeout,omitempty"`
	QueueTimeout       *Duration `json:"queueTimeout,omitempty"`
	QueueSize          *int      `json:"queueSize,omitempty"`
	MemoryLimitMB      *int      `json:"memoryLimitMB,omitempty"`
	AutoCleanup        *bool     `json:"autoCleanup,omitempty"`
	CleanupInterval    *Duration `json:"cleanupInterval,omitempty"`
}

func (p LimitsPatch) Apply(l Limits) Limits {
	if p.MaxInstances != nil {
		l.MaxInstances = *p.MaxInstances
	}
	if p.MaxPerUser != nil {
		l.MaxPerUser = *p.MaxPerUser
	}
	if p.MaxSessions != nil {
		l.MaxSessions = *p.MaxSessions
	}
	if p.SessionIdleTimeout != nil {
		l.SessionIdleTimeout = p.SessionIdleTimeout.Duration
	}
	if p.QueueTimeout != nil {
		l.QueueTimeout = p.QueueTimeout.Duration
	}
	if p.QueueSize != nil {
		l.QueueSize = *p.QueueSize
	}
	if p.MemoryLimitMB != nil {
		l.MemoryLimitMB = *p.MemoryLimitMB
	}
	if p.AutoCleanup != nil {
		l.AutoCleanup = *p.AutoCleanup
	}
	if p.CleanupInterval != nil {
		l.CleanupInterval = p.CleanupInterval.Duration
	}
	return l
}
