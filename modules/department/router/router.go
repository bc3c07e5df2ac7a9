package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/department/controller"

	"github.com/labstack/echo/v4"
)

type DepartmentRouter struct {
	DepartmentController *controller.DepartmentController
}

func NewDepartmentRouter(departmentController *controller.DepartmentController) *DepartmentRouter {
	return &DepartmentRouter{DepartmentController: departmentController}
}

func (r *DepartmentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.POST("/api/v1/departments/verify", r.DepartmentController.Verify)

	admin := e.Group("/api/v1/admin/departments", mw.AuthMiddleware(), mw.AdminOnly())
	admin.GET("", r.DepartmentController.List)
	admin.POST("", r.DepartmentController.Create)
	admin.PUT("/:id", r.DepartmentController.Update)
	admin.DELETE("/:id", r.DepartmentController.Delete)
}
