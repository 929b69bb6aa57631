package session

import (
	"context"
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/browsermux/browsermux/pkg/models"
)

func newTestSession(id string) (*Session, *fakeBrowser) {
	br := &fakeBrowser{connected: true}
	br.ctx = &fakeContext{br: br, page: &fakePage{url: "about:blank"}}
	sess := NewSession(id, models.Settings{Kind: models.EngineChromium},
		br, br.ctx, br.ctx.page, time.Now(), func() {})
	return sess, br
}

func TestLocalSessionStorage_AddGetDelete(t *testing.T) {
	g := NewWithT(t)
	s := NewLocalSessionStorage(zaptest.NewLogger(t))

	sess, _ := newTestSession("sess1")
	g.Expect(s.Add(sess, 0)).To(Succeed())
	g.Expect(s.Len()).To(Equal(1))

	got, ok := s.Get("sess1")
	g.Expect(ok).To(BeTrue())
	g.Expect(got).To(BeIdenticalTo(sess))

	// duplicate id is rejected
	dup, _ := newTestSession("sess1")
	err := s.Add(dup, 0)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.(models.ErrorWithCode).Code()).To(Equal(http.StatusConflict))

	g.Expect(s.Delete("sess1")).To(BeTrue())
	g.Expect(s.Delete("sess1")).To(BeFalse())
	g.Expect(s.Len()).To(Equal(0))
}

func TestLocalSessionStorage_Add_SessionLimit(t *testing.T) {
	g := NewWithT(t)
	s := NewLocalSessionStorage(zaptest.NewLogger(t))

	for _, id := range []string{"sess1", "sess2"} {
		sess, _ := newTestSession(id)
		g.Expect(s.Add(sess, 2)).To(Succeed())
	}

	over, _ := newTestSession("sess3")
	err := s.Add(over, 2)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.(models.ErrorWithCode).Code()).To(Equal(http.StatusTooManyRequests))
	g.Expect(s.Len()).To(Equal(2))

	// cap of 0 means unlimited
	g.Expect(s.Add(over, 0)).To(Succeed())
}

func TestLocalSessionStorage_DeleteIf(t *testing.T) {
	g := NewWithT(t)
	s := NewLocalSessionStorage(zaptest.NewLogger(t))

	first, _ := newTestSession("sess1")
	g.Expect(s.Add(first, 0)).To(Succeed())
	g.Expect(s.Delete("sess1")).To(BeTrue())

	// id reused by a new session, the old holder can no longer claim it
	second, _ := newTestSession("sess1")
	g.Expect(s.Add(second, 0)).To(Succeed())
	g.Expect(s.DeleteIf("sess1", first)).To(BeFalse())
	g.Expect(s.Len()).To(Equal(1))

	g.Expect(s.DeleteIf("sess1", second)).To(BeTrue())
	g.Expect(s.Len()).To(Equal(0))
	g.Expect(s.DeleteIf("sess1", second)).To(BeFalse())
}

func TestLocalSessionStorage_List(t *testing.T) {
	g := NewWithT(t)
	s := NewLocalSessionStorage(zaptest.NewLogger(t))

	for _, id := range []string{"sess1", "sess2", "sess3"} {
		sess, _ := newTestSession(id)
		g.Expect(s.Add(sess, 0)).To(Succeed())
	}
	g.Expect(s.List()).To(HaveLen(3))
}

func TestLocalSessionStorage_Shutdown(t *testing.T) {
	g := NewWithT(t)
	s := NewLocalSessionStorage(zaptest.NewLogger(t))

	sess, br := newTestSession("sess1")
	g.Expect(s.Add(sess, 0)).To(Succeed())

	g.Expect(s.Shutdown(context.Background())).To(Succeed())
	g.Expect(s.IsShutdown()).To(BeTrue())
	g.Expect(s.Len()).To(Equal(0))
	g.Expect(br.isClosed()).To(BeTrue())

	// no new sessions after shutdown
	late, _ := newTestSession("sess2")
	g.Expect(s.Add(late, 0)).To(MatchError(ErrStorageShutdown))
}

func TestSession_TouchAndConsole(t *testing.T) {
	g := NewWithT(t)
	sess, _ := newTestSession("sess1")

	ts := time.Now().Add(time.Hour)
	sess.Touch(ts)
	g.Expect(sess.LastAccessed()).To(BeTemporally("==", ts))

	sess.AppendLog(LogEntry{Level: models.LogLevelLog, Text: "hello"})
	sess.AppendLog(LogEntry{Level: models.LogLevelError, Text: "boom"})
	log := sess.ConsoleLog()
	g.Expect(log).To(HaveLen(2))
	g.Expect(log[1].Level).To(Equal(models.LogLevelError))
}

func TestSession_ReleaseCapacityOnce(t *testing.T) {
	g := NewWithT(t)

	released := 0
	br := &fakeBrowser{connected: true}
	br.ctx = &fakeContext{br: br, page: &fakePage{}}
	sess := NewSession("sess1", models.Settings{}, br, br.ctx, br.ctx.page, time.Now(),
		func() { released++ })

	sess.ReleaseCapacity()
	sess.ReleaseCapacity()
	g.Expect(released).To(Equal(1))
}
