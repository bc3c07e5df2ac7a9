package service

import (
	"context"
	"room-booking-api/core/config"
	"room-booking-api/core/constants"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/utils"
	"room-booking-api/modules/auth/dto"
	departmentService "room-booking-api/modules/department/service"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	departmentService departmentService.DepartmentServiceInterface
}

func NewAuthService(deptSvc departmentService.DepartmentServiceInterface) *AuthService {
	return &AuthService{departmentService: deptSvc}
}

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
}

// Login authenticates an admin. Both checks must pass: the department code
// must carry the admin role, and the password must match the configured
// bcrypt hash. Failures return the same code so callers cannot distinguish
// which factor was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	logger.Info("AuthService:Login:Start")

	if req.DepartmentCode == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "department code and password are required", nil)
	}

	dc, appErr := s.departmentService.Lookup(ctx, req.DepartmentCode)
	if appErr != nil {
		return nil, appErr
	}
	if dc == nil || dc.Role != "admin" {
		logger.Warn("AuthService:Login:Rejected", "reason", "code")
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	hash := config.Get().Auth.AdminPasswordHash
	if hash == "" {
		logger.Error("AuthService:Login:NoPasswordConfigured")
		return nil, errors.NewAppError(errors.ErrInternalServer, "admin login is not configured", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		logger.Warn("AuthService:Login:Rejected", "reason", "password")
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	token, err := utils.GenerateToken(dc.Code, dc.Role, constants.AdminTokenTTL)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign session token", err)
	}

	logger.Info("AuthService:Login:Success", "department", dc.DepartmentName)
	return &dto.LoginResponse{
		Token:          token,
		DepartmentName: dc.DepartmentName,
		Role:           dc.Role,
		ExpiresIn:      int64(constants.AdminTokenTTL.Seconds()),
	}, nil
}
