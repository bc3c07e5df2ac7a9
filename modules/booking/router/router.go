package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	BookingController *controller.BookingController
}

func NewBookingRouter(bookingController *controller.BookingController) *BookingRouter {
	return &BookingRouter{BookingController: bookingController}
}

func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("/:id/availability", r.BookingController.GetAvailability)
	rooms.GET("/:id/bookings", r.BookingController.ListForRoom)

	bookings := e.Group("/api/v1/bookings")
	bookings.GET("", r.BookingController.List)
	bookings.POST("", r.BookingController.Create)
	bookings.GET("/:id", r.BookingController.Get)
	bookings.PUT("/:id", r.BookingController.Update)
	bookings.POST("/:id/cancel", r.BookingController.Cancel)

	admin := e.Group("/api/v1/admin/bookings", mw.AuthMiddleware(), mw.AdminOnly())
	admin.GET("", r.BookingController.List)
	admin.POST("/:id/cancel", r.BookingController.CancelAsAdmin)
}
