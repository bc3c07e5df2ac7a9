package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/room/controller"

	"github.com/labstack/echo/v4"
)

type RoomRouter struct {
	RoomController *controller.RoomController
}

func NewRoomRouter(roomController *controller.RoomController) *RoomRouter {
	return &RoomRouter{RoomController: roomController}
}

func (r *RoomRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	public := e.Group("/api/v1/rooms")
	public.GET("", r.RoomController.List)
	public.GET("/:id", r.RoomController.Get)

	admin := e.Group("/api/v1/admin/rooms", mw.AuthMiddleware(), mw.AdminOnly())
	admin.POST("", r.RoomController.Create)
	admin.PUT("/:id", r.RoomController.Update)
	admin.DELETE("/:id", r.RoomController.Delete)
}
