package auth

import (
	"room-booking-api/modules/auth/controller"
	"room-booking-api/modules/auth/router"
	"room-booking-api/modules/auth/service"
	departmentService "room-booking-api/modules/department/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, deptSvc departmentService.DepartmentServiceInterface) {
	svc := service.NewAuthService(deptSvc)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e)
}
