package admission

import (
	"context"

	"github.com/browsermux/browsermux/pkg/models"
)

// Request asks for one unit of browser capacity. UserID is optional, empty
// means unattributed. Higher priority requests are served first.
type Request struct {
	UserID   string
	Priority int
}

type Usage struct {
	ActiveInstances int
	QueueDepth      int
	MemoryMB        int
}

type Governor interface {
	// RequestLaunch grants immediately when capacity allows, rejects
	// immediately on a full queue or an exhausted per-user allowance, and
	// otherwise blocks until the request is granted, times out or the queue
	// is cleared.
	RequestLaunch(ctx context.Context, req Request) error
	// Release returns one unit of capacity and hands it to the most eligible
	// queued request, if any.
	Release(userID string)
	Usage() Usage
	Limits() models.Limits
	UpdateLimits(patch models.LimitsPatch) models.Limits
	// OnLimitsUpdate registers a listener invoked after every limits change.
	OnLimitsUpdate(fn func(models.Limits))
	// ClearQueue resolves every queued request with an error and reports how
	// many were cleared.
	ClearQueue() int
}
