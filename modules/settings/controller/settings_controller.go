package controller

import (
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/settings/entity"
	"room-booking-api/modules/settings/service"

	"github.com/labstack/echo/v4"
)

type SettingsController struct {
	controller.BaseController
	SettingsService service.SettingsServiceInterface
}

func NewSettingsController(svc service.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		BaseController:  controller.NewBaseController(),
		SettingsService: svc,
	}
}

// GetScheduling handles GET /admin/settings/scheduling
func (c *SettingsController) GetScheduling(ctx echo.Context) error {
	result, appErr := c.SettingsService.GetScheduling(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateScheduling handles PUT /admin/settings/scheduling
func (c *SettingsController) UpdateScheduling(ctx echo.Context) error {
	var req entity.SchedulingSettings
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.SettingsService.UpdateScheduling(ctx.Request().Context(), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, req, "Scheduling settings updated")
}
