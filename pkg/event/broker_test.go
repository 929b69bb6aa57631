package event

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"
)

func TestEventBrokerImpl_Subscribe(t *testing.T) {
	g := NewWithT(t)
	b := NewEventBrokerImpl(1, zaptest.NewLogger(t))

	ch := b.Subscribe(TypeSessionCreated)

	ev1 := SessionEvent{Type: TypeSessionCreated, ID: "sess1", At: time.UnixMilli(111)}
	b.Publish(ev1)
	ev2 := SessionEvent{Type: TypeSessionCreated, ID: "sess2", At: time.UnixMilli(122)}
	b.Publish(ev2) // should be dropped

	var got Event
	g.Expect(ch).To(Receive(&got))
	g.Expect(got).To(Equal(ev1))
	g.Expect(ch).ToNot(Receive())

	err := b.ShutDown(context.TODO())

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(ch).To(BeClosed())
}

func TestEventBrokerImpl_Subscribe_MultipleTypes(t *testing.T) {
	g := NewWithT(t)
	b := NewEventBrokerImpl(4, zaptest.NewLogger(t))

	ch := b.Subscribe(TypeSessionCreated, TypeSessionClosed)

	b.Publish(SessionEvent{Type: TypeSessionCreated, ID: "sess1"})
	b.Publish(SessionEvent{Type: TypeSessionReaped, ID: "sess1"}) // not subscribed
	b.Publish(SessionEvent{Type: TypeSessionClosed, ID: "sess1"})

	var got Event
	g.Expect(ch).To(Receive(&got))
	g.Expect(got.EventType()).To(Equal(TypeSessionCreated))
	g.Expect(ch).To(Receive(&got))
	g.Expect(got.EventType()).To(Equal(TypeSessionClosed))
	g.Expect(ch).ToNot(Receive())

	g.Expect(b.ShutDown(context.TODO())).To(Succeed())
	g.Expect(ch).To(BeClosed())
}

func TestEventBrokerImpl_Publish_NoSubscribers(t *testing.T) {
	g := NewWithT(t)
	b := NewEventBrokerImpl(1, zaptest.NewLogger(t))

	g.Expect(func() {
		b.Publish(SessionEvent{Type: TypeSessionRecovered, ID: "sess1"})
	}).ToNot(Panic())
	g.Expect(b.ShutDown(context.TODO())).To(Succeed())
}
