package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/browsermux/browsermux/internal/services/persistence"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

var errNoPath = errors.New("path is required")

type PersistenceController struct {
	store persistence.Store
}

func NewPersistenceController(store persistence.Store) *PersistenceController {
	return &PersistenceController{store: store}
}

func (p *PersistenceController) Stats(c echo.Context) error {
	stats, err := p.store.Stats()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

type transferRequest struct {
	Path string `json:"path"`
}

func (p *PersistenceController) Export(c echo.Context) error {
	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "failed to parse export request"))
	}
	if req.Path == "" {
		return models.NewBadRequestError(errNoPath)
	}
	n, err := p.store.Export(req.Path)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ExportResult{Exported: n})
}

func (p *PersistenceController) Import(c echo.Context) error {
	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "failed to parse import request"))
	}
	if req.Path == "" {
		return models.NewBadRequestError(errNoPath)
	}
	n, err := p.store.Import(req.Path)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ImportResult{Imported: n})
}
