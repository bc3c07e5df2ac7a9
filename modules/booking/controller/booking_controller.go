package controller

import (
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/core/params"
	"room-booking-api/modules/booking/dto"
	"room-booking-api/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BookingController struct {
	controller.BaseController
	bookingService service.BookingServiceInterface
}

func NewBookingController(bookingService service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		bookingService: bookingService,
	}
}

// GetAvailability answers GET /rooms/:id/availability?date=YYYY-MM-DD.
func (ctrl *BookingController) GetAvailability(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid room id", err))
	}

	resp, appErr := ctrl.bookingService.GetAvailability(c.Request().Context(), roomID, c.QueryParam("date"))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, resp, "availability retrieved")
}

func (ctrl *BookingController) ListForRoom(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid room id", err))
	}

	bookings, appErr := ctrl.bookingService.ListForRoomDate(c.Request().Context(), roomID, c.QueryParam("date"))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, bookings, "bookings retrieved")
}

func (ctrl *BookingController) Create(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	created, appErr := ctrl.bookingService.Create(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, created, "booking created")
}

func (ctrl *BookingController) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid booking id", err))
	}

	booking, appErr := ctrl.bookingService.GetByID(c.Request().Context(), id)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, booking, "booking retrieved")
}

func (ctrl *BookingController) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid booking id", err))
	}

	var req dto.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	cred, appErr := service.CredentialFrom(req.Credential)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	if appErr := ctrl.bookingService.Cancel(c.Request().Context(), id, cred); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "booking cancelled")
}

func (ctrl *BookingController) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid booking id", err))
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	updated, appErr := ctrl.bookingService.Update(c.Request().Context(), id, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, updated, "booking updated")
}

// List answers GET /bookings?date=&room_id=&status= with paging.
func (ctrl *BookingController) List(c echo.Context) error {
	query := service.ListQuery{
		RoomID: c.QueryParam("room_id"),
		Date:   c.QueryParam("date"),
		Status: c.QueryParam("status"),
	}
	page, appErr := ctrl.bookingService.ListAll(c.Request().Context(), query, params.FromEcho(c))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, page, "bookings retrieved")
}

func (ctrl *BookingController) CancelAsAdmin(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid booking id", err))
	}

	if appErr := ctrl.bookingService.CancelAsAdmin(c.Request().Context(), id); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "booking cancelled")
}
