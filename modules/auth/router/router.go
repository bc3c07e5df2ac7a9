package router

import (
	"room-booking-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: authController}
}

func (r *AuthRouter) Setup(e *echo.Echo) {
	e.POST("/api/v1/auth/login", r.AuthController.Login)
}
