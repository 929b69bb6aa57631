package resources

import (
	"github.com/browsermux/browsermux/pkg/admission"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

type ResourceService interface {
	GetResourceUsage() *dto.ResourceUsage
	GetLimits() models.Limits
	UpdateLimits(patch models.LimitsPatch) models.Limits
	ClearQueue() int
}

// SessionCounter decouples the usage snapshot from the registry, the
// governor only tracks instances it admitted.
type SessionCounter interface {
	Len() int
}

type ResourceServiceImpl struct {
	gov      admission.Governor
	sessions SessionCounter
}

func NewResourceService(gov admission.Governor, sessions SessionCounter) *ResourceServiceImpl {
	return &ResourceServiceImpl{gov: gov, sessions: sessions}
}

func (s *ResourceServiceImpl) GetResourceUsage() *dto.ResourceUsage {
	usage := s.gov.Usage()
	return &dto.ResourceUsage{
		ActiveInstances: usage.ActiveInstances,
		ActiveSessions:  s.sessions.Len(),
		QueueDepth:      usage.QueueDepth,
		MemoryMB:        usage.MemoryMB,
	}
}

func (s *ResourceServiceImpl) GetLimits() models.Limits {
	return s.gov.Limits()
}

func (s *ResourceServiceImpl) UpdateLimits(patch models.LimitsPatch) models.Limits {
	return s.gov.UpdateLimits(patch)
}

func (s *ResourceServiceImpl) ClearQueue() int {
	return s.gov.ClearQueue()
}
