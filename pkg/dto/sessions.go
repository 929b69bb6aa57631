package dto

import (
	"time"

	"github.com/browsermux/browsermux/pkg/models"
)

type SessionInfo struct {
	ID             string            `json:"id"`
	Kind           models.EngineKind `json:"kind"`
	URL            string            `json:"url"`
	CreatedAt      time.Time         `json:"createdAt"`
	LastAccessedAt time.Time         `json:"lastAccessedAt"`
}

type SessionCreated struct {
	ID string `json:"id"`
}

type CleanupResult struct {
	Closed int `json:"closed"`
}

type RecoveryFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type RecoveryReport struct {
	Recovered []string          `json:"recovered"`
	Failed    []RecoveryFailure `json:"failed"`
}
