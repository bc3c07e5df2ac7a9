package notification

import (
	"room-booking-api/core/database"
	"room-booking-api/modules/notification/controller"
	"room-booking-api/modules/notification/repository"
	"room-booking-api/modules/notification/router"
	"room-booking-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module and returns the service for the asynq
// worker handlers.
func Init(e *echo.Echo, db database.IDatabase) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e)
	return svc
}
