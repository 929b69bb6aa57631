package reaper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/browsermux/browsermux/mocks"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

type countingCleaner struct {
	calls atomic.Int64
}

func (c *countingCleaner) CleanupIdleSessions(time.Duration) int {
	c.calls.Add(1)
	return 1
}

func TestReaper_AutoCleanup(t *testing.T) {
	g := NewWithT(t)

	cleaner := &countingCleaner{}
	res := new(mocks.ResourceService)
	res.EXPECT().GetResourceUsage().Return(&dto.ResourceUsage{ActiveInstances: 1})

	r := NewReaper(cleaner, res, models.Limits{
		SessionIdleTimeout: time.Minute,
		AutoCleanup:        true,
		CleanupInterval:    10 * time.Millisecond,
	}, zaptest.NewLogger(t))

	r.Start()
	defer func() { _ = r.Stop(context.Background()) }()

	g.Eventually(cleaner.calls.Load).Should(BeNumerically(">=", 2))
}

func TestReaper_NoAutoCleanup(t *testing.T) {
	g := NewWithT(t)

	cleaner := &countingCleaner{}
	res := new(mocks.ResourceService)
	res.EXPECT().GetResourceUsage().Return(&dto.ResourceUsage{})

	r := NewReaper(cleaner, res, models.Limits{
		SessionIdleTimeout: time.Minute,
		AutoCleanup:        false,
		CleanupInterval:    10 * time.Millisecond,
	}, zaptest.NewLogger(t))

	r.Start()
	defer func() { _ = r.Stop(context.Background()) }()

	g.Consistently(cleaner.calls.Load, "100ms").Should(BeZero())
}

func TestReaper_DisabledInterval(t *testing.T) {
	g := NewWithT(t)

	cleaner := &countingCleaner{}
	res := new(mocks.ResourceService)

	r := NewReaper(cleaner, res, models.Limits{CleanupInterval: 0}, zaptest.NewLogger(t))
	r.Start()

	g.Consistently(cleaner.calls.Load, "50ms").Should(BeZero())
	g.Expect(r.Stop(context.Background())).To(Succeed())
}

func TestReaper_Restart(t *testing.T) {
	g := NewWithT(t)

	cleaner := &countingCleaner{}
	res := new(mocks.ResourceService)
	res.EXPECT().GetResourceUsage().Return(&dto.ResourceUsage{})

	// starts disabled, a limits update turns cleanup on
	r := NewReaper(cleaner, res, models.Limits{CleanupInterval: 0}, zaptest.NewLogger(t))
	r.Start()

	r.Restart(models.Limits{
		SessionIdleTimeout: time.Minute,
		AutoCleanup:        true,
		CleanupInterval:    10 * time.Millisecond,
	})
	defer func() { _ = r.Stop(context.Background()) }()

	g.Eventually(cleaner.calls.Load).Should(BeNumerically(">=", 1))
}

func TestReaper_StopIsIdempotent(t *testing.T) {
	g := NewWithT(t)

	cleaner := &countingCleaner{}
	res := new(mocks.ResourceService)
	res.EXPECT().GetResourceUsage().Return(&dto.ResourceUsage{}).Maybe()

	r := NewReaper(cleaner, res, models.Limits{
		CleanupInterval: 10 * time.Millisecond,
	}, zaptest.NewLogger(t))
	r.Start()

	g.Expect(r.Stop(context.Background())).To(Succeed())
	g.Expect(r.Stop(context.Background())).To(Succeed())
}
