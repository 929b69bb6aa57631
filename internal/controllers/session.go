package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/browsermux/browsermux/internal/router"
	"github.com/browsermux/browsermux/internal/services/session"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

// LimitsSource supplies the idle threshold for manual cleanup requests.
type LimitsSource interface {
	GetLimits() models.Limits
}

type SessionController struct {
	srv    session.Service
	limits LimitsSource
	l      *zap.SugaredLogger
}

func NewSessionController(srv session.Service, limits LimitsSource, l *zap.Logger) *SessionController {
	return &SessionController{srv: srv, limits: limits, l: l.Sugar()}
}

func (s *SessionController) CreateSession(ctx echo.Context) error {
	var opts session.CreateOptions
	if err := ctx.Bind(&opts); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "failed to parse session request"))
	}

	id, err := s.srv.CreateSession(ctx.Request().Context(), opts)
	if err != nil {
		// expected rejections (capacity, conflicts) travel back as 4xx, the
		// error handler reports them, so a warn is enough here
		s.l.Warnw("failed to create session", zap.Error(err))
		return models.WrapCancelledErr(err)
	}
	return ctx.JSON(http.StatusCreated, dto.SessionCreated{ID: id})
}

func (s *SessionController) GetSession(ctx echo.Context) error {
	sess, err := s.srv.GetSession(ctx.Param(router.SessionParam))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dto.SessionInfo{
		ID:             sess.ID(),
		Kind:           sess.Kind(),
		URL:            sess.Page().URL(),
		CreatedAt:      sess.Created(),
		LastAccessedAt: sess.LastAccessed(),
	})
}

func (s *SessionController) EnsureSession(ctx echo.Context) error {
	var opts session.CreateOptions
	if err := ctx.Bind(&opts); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "failed to parse session request"))
	}

	sess, err := s.srv.EnsureSession(ctx.Request().Context(), ctx.Param(router.SessionParam), opts)
	if err != nil {
		s.l.Warnw("failed to ensure session", zap.Error(err))
		return models.WrapCancelledErr(err)
	}
	return ctx.JSON(http.StatusOK, dto.SessionInfo{
		ID:             sess.ID(),
		Kind:           sess.Kind(),
		URL:            sess.Page().URL(),
		CreatedAt:      sess.Created(),
		LastAccessedAt: sess.LastAccessed(),
	})
}

func (s *SessionController) ListSessions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.srv.ListSessions())
}

func (s *SessionController) DeleteSession(ctx echo.Context) error {
	if err := s.srv.CloseSession(ctx.Request().Context(), ctx.Param(router.SessionParam)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *SessionController) SnapshotSession(ctx echo.Context) error {
	if err := s.srv.SnapshotSession(ctx.Request().Context(), ctx.Param(router.SessionParam)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *SessionController) RecoverSession(ctx echo.Context) error {
	id, err := s.srv.RecoverSession(ctx.Request().Context(), ctx.Param(router.SessionParam))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dto.SessionCreated{ID: id})
}

func (s *SessionController) RecoverAllSessions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.srv.RecoverAllSessions(ctx.Request().Context()))
}

func (s *SessionController) CleanupSessions(ctx echo.Context) error {
	maxIdle := s.limits.GetLimits().SessionIdleTimeout
	closed := s.srv.CleanupIdleSessions(maxIdle)
	return ctx.JSON(http.StatusOK, dto.CleanupResult{Closed: closed})
}
