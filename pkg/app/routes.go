package app

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/browsermux/browsermux/internal/controllers"
	"github.com/browsermux/browsermux/internal/router"
	"github.com/browsermux/browsermux/internal/services/persistence"
	"github.com/browsermux/browsermux/internal/services/resources"
	"github.com/browsermux/browsermux/internal/services/session"
	"github.com/browsermux/browsermux/pkg/config"
)

type (
	SessionController interface {
		CreateSession(ctx echo.Context) error
		GetSession(ctx echo.Context) error
		EnsureSession(ctx echo.Context) error
		ListSessions(ctx echo.Context) error
		DeleteSession(ctx echo.Context) error
		SnapshotSession(ctx echo.Context) error
		RecoverSession(ctx echo.Context) error
		RecoverAllSessions(ctx echo.Context) error
		CleanupSessions(ctx echo.Context) error
	}

	ResourcesController interface {
		ResourceUsage(c echo.Context) error
		GetLimits(c echo.Context) error
		UpdateLimits(c echo.Context) error
		ClearQueue(c echo.Context) error
	}

	PersistenceController interface {
		Stats(c echo.Context) error
		Export(c echo.Context) error
		Import(c echo.Context) error
	}
)

func initEcho(cfg config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.ErrorHandler

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(_ config.Config, e *echo.Echo, srvLogger *zap.Logger) {
	if srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Debug()
				return nil
			},
			LogLatency:   true,
			LogRemoteIP:  true,
			LogMethod:    true,
			LogURI:       true,
			LogRequestID: true,
			LogUserAgent: true,
			LogStatus:    true,
			LogError:     true,
			HandleError:  true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	_ config.Config,
	e *echo.Echo,
	sessionController SessionController,
	resourcesController ResourcesController,
	persistenceController PersistenceController,
) {
	api := e.Group(router.APIPath)

	sess := api.Group(router.SessionsPath)
	sess.POST("", sessionController.CreateSession)
	sess.GET("", sessionController.ListSessions)
	sess.POST(router.RecoverPath, sessionController.RecoverAllSessions)
	sess.POST("/cleanup", sessionController.CleanupSessions)
	sess.GET(router.SessRoute("/:%s"), sessionController.GetSession)
	sess.PUT(router.SessRoute("/:%s"), sessionController.EnsureSession)
	sess.DELETE(router.SessRoute("/:%s"), sessionController.DeleteSession)
	sess.POST(router.SessRoute("/:%s/snapshot"), sessionController.SnapshotSession)
	sess.POST(router.SessRoute("/:%s"+router.RecoverPath), sessionController.RecoverSession)

	res := api.Group(router.ResourcesPath)
	res.GET("", resourcesController.ResourceUsage)
	res.GET(router.LimitsPath, resourcesController.GetLimits)
	res.PATCH(router.LimitsPath, resourcesController.UpdateLimits)
	res.DELETE(router.QueuePath, resourcesController.ClearQueue)

	store := api.Group(router.StorePath)
	store.GET(router.StatsPath, persistenceController.Stats)
	store.POST(router.ExportPath, persistenceController.Export)
	store.POST(router.ImportPath, persistenceController.Import)
}

func initSessionController(srv session.Service, res resources.ResourceService, l *zap.Logger) *controllers.SessionController {
	return controllers.NewSessionController(srv, res, l)
}

func initResourcesController(res resources.ResourceService) *controllers.ResourcesController {
	return controllers.NewResourcesController(res)
}

func initPersistenceController(store persistence.Store) *controllers.PersistenceController {
	return controllers.NewPersistenceController(store)
}
