package settings

import (
	"room-booking-api/core/database"
	"room-booking-api/core/middleware"
	"room-booking-api/modules/settings/controller"
	"room-booking-api/modules/settings/repository"
	"room-booking-api/modules/settings/router"
	"room-booking-api/modules/settings/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Init wires the settings module and returns the service for modules that
// consume scheduling configuration.
func Init(e *echo.Echo, db database.IDatabase, rdb *redis.Client, mw *middleware.Middleware) *service.SettingsService {
	repo := repository.NewSettingsRepository(db)
	svc := service.NewSettingsService(repo, rdb)
	ctrl := controller.NewSettingsController(svc)
	rtr := router.NewSettingsRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
