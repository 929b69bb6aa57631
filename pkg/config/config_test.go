package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/browsermux/browsermux/pkg/models"
)

func TestConfigViper(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("listen", "", "")
	f.Int("queue-size", 25, "")
	err := f.Parse([]string{"--listen=:1234"})
	g.Expect(err).ToNot(HaveOccurred())

	genLineage = func() string {
		return "155"
	}

	v := viper.New()
	v.Set("data-dir", "/var/lib/bmx")
	v.Set("profiles-uri", "file.yaml")
	v.Set("default-session", "main")
	v.Set("create-timeout", 3*time.Minute)
	v.Set("shutdown-timeout", 20*time.Second)
	v.Set("recover-on-startup", true)
	v.Set("event-buffer-size", 64)

	v.Set("max-instances", "3")
	v.Set("max-per-user", 2)
	v.Set("max-sessions", 15)
	v.Set("queue-timeout", "1h")
	v.Set("idle-timeout", 7*time.Minute)
	v.Set("memory-limit-mb", 512)
	v.Set("auto-cleanup", "true")
	v.Set("cleanup-interval", 45*time.Second)

	t.Setenv("BMX_QUEUE_SIZE", "13")

	cfg, err := NewConfig(v, f)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(cfg.Listen()).To(Equal(":1234"))
	g.Expect(cfg.Lineage()).To(Equal("155"))
	g.Expect(cfg.DataDir()).To(Equal("/var/lib/bmx"))
	g.Expect(cfg.ProfilesURI()).To(Equal("file.yaml"))
	g.Expect(cfg.DefaultSessionID()).To(Equal("main"))
	g.Expect(cfg.CreateTimeout()).To(Equal(3 * time.Minute))
	g.Expect(cfg.ShutdownTimeout()).To(Equal(20 * time.Second))
	g.Expect(cfg.RecoverOnStartup()).To(BeTrue())
	g.Expect(cfg.EventBufferSize()).To(Equal(64))

	g.Expect(cfg.Limits()).To(Equal(models.Limits{
		MaxInstances:       3,
		MaxPerUser:         2,
		MaxSessions:        15,
		SessionIdleTimeout: 7 * time.Minute,
		QueueTimeout:       time.Hour,
		QueueSize:          13,
		MemoryLimitMB:      512,
		AutoCleanup:        true,
		CleanupInterval:    45 * time.Second,
	}))
}

func TestZapLogLevel(t *testing.T) {
	g := NewWithT(t)
	g.Expect(ZapLogLevel("inFO", zapcore.WarnLevel)).To(Equal(zapcore.InfoLevel))
	g.Expect(ZapLogLevel("qwe", zapcore.WarnLevel)).To(Equal(zapcore.WarnLevel))
	g.Expect(ZapLogLevel("", zapcore.ErrorLevel)).To(Equal(zapcore.ErrorLevel))
}
