package controller

import (
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/department/dto"
	"room-booking-api/modules/department/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DepartmentController struct {
	controller.BaseController
	departmentService service.DepartmentServiceInterface
}

func NewDepartmentController(departmentService service.DepartmentServiceInterface) *DepartmentController {
	return &DepartmentController{
		BaseController:    controller.NewBaseController(),
		departmentService: departmentService,
	}
}

func (ctrl *DepartmentController) Verify(c echo.Context) error {
	var req dto.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	result, appErr := ctrl.departmentService.VerifyCode(c.Request().Context(), req.Code)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, result, "code verified")
}

func (ctrl *DepartmentController) List(c echo.Context) error {
	codes, appErr := ctrl.departmentService.List(c.Request().Context())
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, codes, "department codes retrieved")
}

func (ctrl *DepartmentController) Create(c echo.Context) error {
	var req dto.CreateDepartmentCodeRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	created, appErr := ctrl.departmentService.Create(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, created, "department code created")
}

func (ctrl *DepartmentController) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid department code id", err))
	}

	var req dto.UpdateDepartmentCodeRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid request body", err))
	}

	updated, appErr := ctrl.departmentService.Update(c.Request().Context(), id, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, updated, "department code updated")
}

func (ctrl *DepartmentController) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "invalid department code id", err))
	}

	if appErr := ctrl.departmentService.Delete(c.Request().Context(), id); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "department code deleted")
}
