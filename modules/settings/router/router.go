package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/settings/controller"

	"github.com/labstack/echo/v4"
)

type SettingsRouter struct {
	SettingsController *controller.SettingsController
}

func NewSettingsRouter(settingsController *controller.SettingsController) *SettingsRouter {
	return &SettingsRouter{SettingsController: settingsController}
}

func (r *SettingsRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	admin := e.Group("/api/v1/admin/settings", mw.AuthMiddleware(), mw.AdminOnly())
	admin.GET("/scheduling", r.SettingsController.GetScheduling)
	admin.PUT("/scheduling", r.SettingsController.UpdateScheduling)
}
