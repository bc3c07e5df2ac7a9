package booking

import (
	"room-booking-api/core/database"
	"room-booking-api/core/middleware"
	"room-booking-api/modules/booking/controller"
	"room-booking-api/modules/booking/repository"
	"room-booking-api/modules/booking/router"
	"room-booking-api/modules/booking/service"
	roomservice "room-booking-api/modules/room/service"
	settingsservice "room-booking-api/modules/settings/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.IDatabase,
	mw *middleware.Middleware,
	roomSvc roomservice.RoomServiceInterface,
	settingsSvc settingsservice.SettingsServiceInterface,
	queue *asynq.Client,
) *service.BookingService {
	repo := repository.NewBookingRepository(db)
	svc := service.NewBookingService(repo, roomSvc, settingsSvc, queue)
	ctrl := controller.NewBookingController(svc)
	rtr := router.NewBookingRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
