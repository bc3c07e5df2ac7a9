package controller

import (
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RoomController struct {
	controller.BaseController
	roomService service.RoomServiceInterface
}

func NewRoomController(roomService service.RoomServiceInterface) *RoomController {
	return &RoomController{
		BaseController: controller.NewBaseController(),
		roomService:    roomService,
	}
}

func (ctrl *RoomController) List(c echo.Context) error {
	rooms, appErr := ctrl.roomService.List(c.Request().Context())
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, rooms, "rooms retrieved")
}

func (ctrl *RoomController) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid room id", err))
	}

	room, appErr := ctrl.roomService.GetByID(c.Request().Context(), id)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, room, "room retrieved")
}

func (ctrl *RoomController) Create(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	room, appErr := ctrl.roomService.Create(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, room, "room created")
}

func (ctrl *RoomController) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid room id", err))
	}

	var req dto.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	room, appErr := ctrl.roomService.Update(c.Request().Context(), id, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, room, "room updated")
}

func (ctrl *RoomController) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid room id", err))
	}

	if appErr := ctrl.roomService.Delete(c.Request().Context(), id); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "room deleted")
}
