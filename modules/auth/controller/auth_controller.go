package controller

import (
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/auth/dto"
	"room-booking-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	authService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		authService:    authService,
	}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	resp, appErr := ctrl.authService.Login(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, resp, "login successful")
}
