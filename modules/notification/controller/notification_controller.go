package controller

import (
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/core/params"
	"room-booking-api/modules/notification/dto"
	"room-booking-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	notificationService service.NotificationServiceInterface
}

func NewNotificationController(notificationService service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		notificationService: notificationService,
	}
}

func (ctrl *NotificationController) List(c echo.Context) error {
	code := c.QueryParam("department_code")
	queryParams := params.FromEcho(c)

	page, appErr := ctrl.notificationService.GetByDepartment(c.Request().Context(), code, queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, page, "notifications retrieved")
}

func (ctrl *NotificationController) UnreadCount(c echo.Context) error {
	code := c.QueryParam("department_code")

	count, appErr := ctrl.notificationService.CountUnread(c.Request().Context(), code)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, map[string]int{"count": count}, "unread count retrieved")
}

func (ctrl *NotificationController) MarkAsRead(c echo.Context) error {
	var req dto.MarkAsReadRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	if appErr := ctrl.notificationService.MarkAsRead(c.Request().Context(), req.DepartmentCode, req.IDs); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "notifications marked as read")
}

func (ctrl *NotificationController) MarkAllAsRead(c echo.Context) error {
	var req dto.MarkAllAsReadRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	if appErr := ctrl.notificationService.MarkAllAsRead(c.Request().Context(), req.DepartmentCode); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "all notifications marked as read")
}
