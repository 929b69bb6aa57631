package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/browsermux/browsermux/internal/services/persistence"
	"github.com/browsermux/browsermux/internal/services/reaper"
	"github.com/browsermux/browsermux/internal/services/resources"
	"github.com/browsermux/browsermux/internal/services/session"
	"github.com/browsermux/browsermux/pkg/admission"
	"github.com/browsermux/browsermux/pkg/config"
	"github.com/browsermux/browsermux/pkg/engine"
	"github.com/browsermux/browsermux/pkg/event"
	"github.com/browsermux/browsermux/pkg/profiles"
	"github.com/browsermux/browsermux/pkg/signal"
)

var (
	InitLogger          func() *zap.Logger                                            = InitLoggerFunc
	InitConfig          func() config.Config                                          = InitConfigFunc
	InitSignalHandler   func(config.Config) *signal.Handler                           = InitSignalHandlerFunc
	InitProfilesCatalog func(config.Config, []byte) profiles.Catalog                  = InitProfilesCatalogFunc
	InitGovernor        func(config.Config) admission.Governor                        = InitGovernorFunc
	InitStore           func(config.Config) persistence.Store                         = InitStoreFunc
	InitEngine          func(config.Config, *signal.Handler) engine.Engine            = InitEngineFunc
	InitEventBroker     func(config.Config, *signal.Handler) event.EventBroker        = InitEventBrokerFunc
	InitMiddleware      func(config.Config, *echo.Echo, *zap.Logger)                  = InitMiddlewareFunc
	InitAPI             func(
		config.Config,
		*echo.Echo,
		SessionController,
		ResourcesController,
		PersistenceController,
	) = InitAPIFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)

	profilesData := loadProfilesConfig(cfg)
	catalog := InitProfilesCatalog(cfg, profilesData)

	gov := InitGovernor(cfg)
	store := InitStore(cfg)
	eng := InitEngine(cfg, sig)
	sStorage := initSessionStorage(sig)

	eb := InitEventBroker(cfg, sig)
	initEventLogger(eb)

	sessSvc := initSessionService(cfg, eng, gov, store, catalog, sStorage, eb)
	resSvc := initResourceService(gov, sessSvc)
	initReaper(cfg, sessSvc, resSvc, gov, sig)

	if cfg.RecoverOnStartup() {
		recoverSessions(sessSvc, mainLog)
	}

	cLog := l.Named("controller")
	sessionController := initSessionController(sessSvc, resSvc, cLog)
	resourcesController := initResourcesController(resSvc)
	persistenceController := initPersistenceController(store)

	srvLog := l.Named("server")
	e := initEcho(cfg, srvLog)
	InitAPI(cfg, e, sessionController, resourcesController, persistenceController)

	// Start server
	go func() {
		lstn := listen(cfg)
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", lstn)
		if err := e.Start(lstn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()

	sig.RegisterShutdownHook(nil, e.Shutdown)
	os.Exit(sig.Start())
}

func initResourceService(gov admission.Governor, sessSvc session.Service) resources.ResourceService {
	return resources.NewResourceService(gov, sessSvc)
}

func initReaper(
	cfg config.Config,
	sessSvc session.Service,
	resSvc resources.ResourceService,
	gov admission.Governor,
	sig *signal.Handler,
) *reaper.Reaper {
	r := reaper.NewReaper(sessSvc, resSvc, cfg.Limits(), InitLog.Desugar().Named("reaper"))
	r.Start()
	gov.OnLimitsUpdate(r.Restart)
	sig.RegisterShutdownHook(nil, r.Stop)
	return r
}

func recoverSessions(sessSvc session.Service, mainLog *zap.SugaredLogger) {
	report := sessSvc.RecoverAllSessions(context.Background())
	mainLog.Infow("session recovery completed",
		zap.Int("recovered", len(report.Recovered)),
		zap.Int("failed", len(report.Failed)))
	for _, f := range report.Failed {
		mainLog.Warnw("failed to recover session", zap.String("id", f.ID), zap.String("error", f.Error))
	}
}
