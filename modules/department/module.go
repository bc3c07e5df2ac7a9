package department

import (
	"room-booking-api/core/database"
	"room-booking-api/core/middleware"
	"room-booking-api/modules/department/controller"
	"room-booking-api/modules/department/repository"
	"room-booking-api/modules/department/router"
	"room-booking-api/modules/department/service"

	"github.com/labstack/echo/v4"
)

// Init wires the department module and returns the service so auth can
// resolve codes to departments during login.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.DepartmentService {
	repo := repository.NewDepartmentRepository(db)
	svc := service.NewDepartmentService(repo)
	ctrl := controller.NewDepartmentController(svc)
	rtr := router.NewDepartmentRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
