package dto

import "github.com/browsermux/browsermux/pkg/models"

type ResourceUsage struct {
	ActiveInstances int `json:"activeInstances"`
	ActiveSessions  int `json:"activeSessions"`
	QueueDepth      int `json:"queueDepth"`
	MemoryMB        int `json:"memoryMB"`
}

type LimitsUpdate struct {
	Limits models.Limits `json:"limits"`
}

type QueueClear struct {
	Cleared int `json:"cleared"`
}
