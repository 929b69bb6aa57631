package dto

import "github.com/browsermux/browsermux/pkg/models"

type StoreStats struct {
	Total      int                       `json:"total"`
	ByKind     map[models.EngineKind]int `json:"byKind"`
	OldestID   string                    `json:"oldestId,omitempty"`
	NewestID   string                    `json:"newestId,omitempty"`
	TotalBytes int64                     `json:"totalBytes"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}

type ExportResult struct {
	Exported int `json:"exported"`
}
