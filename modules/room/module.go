package room

import (
	"room-booking-api/core/database"
	"room-booking-api/core/middleware"
	"room-booking-api/modules/room/controller"
	"room-booking-api/modules/room/repository"
	"room-booking-api/modules/room/router"
	"room-booking-api/modules/room/service"

	"github.com/labstack/echo/v4"
)

// Init wires the room module and returns the service so the booking module
// can verify room existence.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.RoomService {
	repo := repository.NewRoomRepository(db)
	svc := service.NewRoomService(repo)
	ctrl := controller.NewRoomController(svc)
	rtr := router.NewRoomRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
