package models

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestLimitsPatch_Apply(t *testing.T) {
	g := NewWithT(t)

	cur := Limits{
		MaxInstances:       2,
		MaxSessions:        10,
		SessionIdleTimeout: 10 * time.Minute,
		QueueTimeout:       time.Minute,
		QueueSize:          25,
		AutoCleanup:        true,
	}

	maxInstances := 5
	queueSize := 0
	autoCleanup := false
	got := LimitsPatch{
		MaxInstances: &maxInstances,
		QueueSize:    &queueSize,
		AutoCleanup:  &autoCleanup,
	}.Apply(cur)

	// explicit zero values override, unset fields are kept
	g.Expect(got.MaxInstances).To(Equal(5))
	g.Expect(got.QueueSize).To(Equal(0))
	g.Expect(got.AutoCleanup).To(BeFalse())
	g.Expect(got.MaxSessions).To(Equal(10))
	g.Expect(got.SessionIdleTimeout).To(Equal(10 * time.Minute))
	g.Expect(got.QueueTimeout).To(Equal(time.Minute))
}

func TestLimitsPatch_Decode(t *testing.T) {
	g := NewWithT(t)

	var p LimitsPatch
	g.Expect(json.Unmarshal([]byte(`{"maxPerUser": 3, "queueTimeout": "90s"}`), &p)).To(Succeed())

	got := p.Apply(Limits{QueueTimeout: time.Minute})
	g.Expect(got.MaxPerUser).To(Equal(3))
	g.Expect(got.QueueTimeout).To(Equal(90 * time.Second))
}
