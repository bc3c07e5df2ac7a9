package router

import (
	"room-booking-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{NotificationController: notificationController}
}

func (r *NotificationRouter) Setup(e *echo.Echo) {
	group := e.Group("/api/v1/notifications")
	group.GET("", r.NotificationController.List)
	group.GET("/unread-count", r.NotificationController.UnreadCount)
	group.PUT("/mark-read", r.NotificationController.MarkAsRead)
	group.PUT("/mark-all-read", r.NotificationController.MarkAllAsRead)
}
