package app

import (
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	pwengine "github.com/browsermux/browsermux/internal/engine/playwright"
	"github.com/browsermux/browsermux/internal/services/persistence"
	"github.com/browsermux/browsermux/internal/services/session"
	"github.com/browsermux/browsermux/pkg/admission"
	"github.com/browsermux/browsermux/pkg/admission/limit"
	"github.com/browsermux/browsermux/pkg/config"
	"github.com/browsermux/browsermux/pkg/engine"
	"github.com/browsermux/browsermux/pkg/event"
	"github.com/browsermux/browsermux/pkg/log"
	"github.com/browsermux/browsermux/pkg/profiles"
	"github.com/browsermux/browsermux/pkg/signal"
)

var InitLog *zap.SugaredLogger

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitSignalHandlerFunc(cfg config.Config) *signal.Handler {
	l := log.GetLogger().Named("signal")
	return signal.NewHandler(cfg.ShutdownTimeout(), l)
}

func loadProfilesConfig(cfg config.Config) []byte {
	uri := cfg.ProfilesURI()
	data, err := os.ReadFile(uri)
	if err != nil {
		if !os.IsNotExist(err) {
			InitLog.Fatalw("failed to load profiles config", zap.Error(err), zap.String("uri", uri))
		}
		InitLog.Infow("profiles config not found, using built-in defaults only", zap.String("uri", uri))
		return nil
	}
	return data
}

func InitProfilesCatalogFunc(_ config.Config, profilesConfig []byte) profiles.Catalog {
	cat, err := profiles.NewYamlCatalog(profilesConfig)
	if err != nil {
		InitLog.Fatalw("failed to initialize profiles catalog", zap.Error(err))
	}

	return cat
}

func InitGovernorFunc(cfg config.Config) admission.Governor {
	l := log.GetLogger().Named("admission")
	limits := cfg.Limits()
	InitLog.With(zap.String("lineage", cfg.Lineage())).
		Infof("initializing admission governor: max_instances=%d, queue_size=%d", limits.MaxInstances, limits.QueueSize)
	return limit.NewLimitGovernor(limits, l)
}

func InitStoreFunc(cfg config.Config) persistence.Store {
	l := log.GetLogger().Named("store")
	return persistence.NewFileStore(afero.NewOsFs(), cfg.DataDir(), time.Now, l)
}

func InitEngineFunc(_ config.Config, sig *signal.Handler) engine.Engine {
	l := log.GetLogger().Named("engine")
	e := pwengine.NewPlaywrightEngine(l)
	sig.RegisterShutdownHook(e, e.Shutdown)
	return e
}

func initSessionStorage(sig *signal.Handler) session.SessionStorage {
	l := log.GetLogger().Named("session")

	s := session.NewLocalSessionStorage(l)
	sig.RegisterShutdownHook(s, s.Shutdown)
	return s
}

func InitEventBrokerFunc(cfg config.Config, sig *signal.Handler) event.EventBroker {
	l := log.GetLogger().Named("event")
	eb := event.NewEventBrokerImpl(cfg.EventBufferSize(), l)
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

func initEventLogger(eb event.EventBroker) {
	l := log.GetLogger().Sugar().Named("event")
	events := eb.Subscribe(
		event.TypeSessionCreated,
		event.TypeSessionClosed,
		event.TypeSessionRecovered,
		event.TypeSessionReaped,
	)
	go func() {
		for ev := range events {
			l.Infow("session event", zap.Any("event", ev))
		}
	}()
}

func initSessionService(
	cfg config.Config,
	eng engine.Engine,
	gov admission.Governor,
	store persistence.Store,
	catalog profiles.Catalog,
	storage session.SessionStorage,
	eb event.EventBroker,
) session.Service {
	l := log.GetLogger().Named("registry")
	return session.NewRegistry(eng, gov, store, catalog, storage, eb,
		cfg.DefaultSessionID(), cfg.CreateTimeout(), time.Now, l)
}

func listen(cfg config.Config) string {
	if val := cfg.Listen(); val != "" {
		return val
	}
	return config.DefaultListen
}
