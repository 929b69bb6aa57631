package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/browsermux/browsermux/internal/services/resources"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

type ResourcesController struct {
	srv resources.ResourceService
}

func NewResourcesController(srv resources.ResourceService) *ResourcesController {
	return &ResourcesController{srv: srv}
}

func (r *ResourcesController) ResourceUsage(c echo.Context) error {
	return c.JSON(http.StatusOK, r.srv.GetResourceUsage())
}

func (r *ResourcesController) GetLimits(c echo.Context) error {
	return c.JSON(http.StatusOK, r.srv.GetLimits())
}

func (r *ResourcesController) UpdateLimits(c echo.Context) error {
	var patch models.LimitsPatch
	if err := c.Bind(&patch); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "failed to parse limits update"))
	}
	limits := r.srv.UpdateLimits(patch)
	return c.JSON(http.StatusOK, dto.LimitsUpdate{Limits: limits})
}

func (r *ResourcesController) ClearQueue(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.QueueClear{Cleared: r.srv.ClearQueue()})
}
