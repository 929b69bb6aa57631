package config

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/browsermux/browsermux/pkg/models"
)

var ConfigPrefix = "BMX"

const (
	DefaultListen = "127.0.0.1:4460"

	DefaultSessionName = "default"

	listen           = "listen"
	shutdownTimeout  = "shutdown-timeout"
	dataDir          = "data-dir"
	profilesURI      = "profiles-uri"
	defaultSession   = "default-session"
	createTimeout    = "create-timeout"
	eventBufferSize  = "event-buffer-size"
	maxInstances     = "max-instances"
	maxPerUser       = "max-per-user"
	maxSessions      = "max-sessions"
	idleTimeout      = "idle-timeout"
	queueSize        = "queue-size"
	queueTimeout     = "queue-timeout"
	memoryLimitMB    = "memory-limit-mb"
	autoCleanup      = "auto-cleanup"
	cleanupInterval  = "cleanup-interval"
	recoverOnStartup = "recover-on-startup"

	defaultConfigPath  = "config/"
	defaultProfilesURI = defaultConfigPath + "profiles.yaml"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	genLineage = uuid.NewString
)

type (
	ServerConfig interface {
		Listen() string
		ShutdownTimeout() time.Duration
	}

	SessionConfig interface {
		DefaultSessionID() string
		CreateTimeout() time.Duration
		RecoverOnStartup() bool
	}

	StoreConfig interface {
		DataDir() string
	}

	LimitsConfig interface {
		Limits() models.Limits
	}

	ProfilesConfig interface {
		ProfilesURI() string
	}

	EventConfig interface {
		EventBufferSize() int
	}

	Config interface {
		ServerConfig
		SessionConfig
		StoreConfig
		LimitsConfig
		ProfilesConfig
		EventConfig
		Lineage() string
	}

	ConfigViper struct {
		v       *viper.Viper
		lineage string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	bindEnvVars(v)

	return &ConfigViper{
		v:       v,
		lineage: genLineage(),
	}, nil
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) ShutdownTimeout() time.Duration {
	return c.v.GetDuration(shutdownTimeout)
}

func (c *ConfigViper) DataDir() string {
	return c.v.GetString(dataDir)
}

func (c *ConfigViper) ProfilesURI() string {
	return c.v.GetString(profilesURI)
}

func (c *ConfigViper) DefaultSessionID() string {
	return c.v.GetString(defaultSession)
}

func (c *ConfigViper) CreateTimeout() time.Duration {
	return c.v.GetDuration(createTimeout)
}

func (c *ConfigViper) RecoverOnStartup() bool {
	return c.v.GetBool(recoverOnStartup)
}

func (c *ConfigViper) EventBufferSize() int {
	return c.v.GetInt(eventBufferSize)
}

func (c *ConfigViper) Lineage() string {
	return c.lineage
}

func (c *ConfigViper) Limits() models.Limits {
	return models.Limits{
		MaxInstances:       c.v.GetInt(maxInstances),
		MaxPerUser:         c.v.GetInt(maxPerUser),
		MaxSessions:        c.v.GetInt(maxSessions),
		SessionIdleTimeout: c.v.GetDuration(idleTimeout),
		QueueTimeout:       c.v.GetDuration(queueTimeout),
		QueueSize:          c.v.GetInt(queueSize),
		MemoryLimitMB:      c.v.GetInt(memoryLimitMB),
		AutoCleanup:        c.v.GetBool(autoCleanup),
		CleanupInterval:    c.v.GetDuration(cleanupInterval),
	}
}

func bindEnvVars(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
