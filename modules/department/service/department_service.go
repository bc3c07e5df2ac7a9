package service

import (
	"context"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/modules/department/dto"
	"room-booking-api/modules/department/entity"
	"room-booking-api/modules/department/repository"

	"github.com/google/uuid"
)

type DepartmentService struct {
	departmentRepository repository.DepartmentRepositoryInterface
}

func NewDepartmentService(departmentRepository repository.DepartmentRepositoryInterface) *DepartmentService {
	return &DepartmentService{departmentRepository: departmentRepository}
}

type DepartmentServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateDepartmentCodeRequest) (*entity.DepartmentCode, *errors.AppError)
	List(ctx context.Context) ([]entity.DepartmentCode, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentCodeRequest) (*entity.DepartmentCode, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	VerifyCode(ctx context.Context, code string) (*dto.VerifyCodeResponse, *errors.AppError)
	Lookup(ctx context.Context, code string) (*entity.DepartmentCode, *errors.AppError)
}

func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentCodeRequest) (*entity.DepartmentCode, *errors.AppError) {
	logger.Info("DepartmentService:Create:Start", "department", req.DepartmentName)

	code := entity.NormalizeCode(req.Code)
	if code == "" || req.DepartmentName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "code and department name are required", nil)
	}

	role := req.Role
	if role == "" {
		role = "user"
	}
	if role != "user" && role != "admin" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "role must be user or admin", nil)
	}

	if existing, err := s.departmentRepository.GetByCode(ctx, code); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check department code", err)
	} else if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "department code already in use", nil)
	}

	created, err := s.departmentRepository.Create(ctx, &entity.DepartmentCode{
		Code:           code,
		DepartmentName: req.DepartmentName,
		Role:           role,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create department code", err)
	}

	logger.Info("DepartmentService:Create:Success", "id", created.ID)
	return created, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]entity.DepartmentCode, *errors.AppError) {
	codes, err := s.departmentRepository.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list department codes", err)
	}
	if codes == nil {
		codes = []entity.DepartmentCode{}
	}
	return codes, nil
}

func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentCodeRequest) (*entity.DepartmentCode, *errors.AppError) {
	dc, err := s.departmentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get department code", err)
	}
	if dc == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "department code not found", nil)
	}

	if req.Code != "" {
		dc.Code = entity.NormalizeCode(req.Code)
	}
	if req.DepartmentName != "" {
		dc.DepartmentName = req.DepartmentName
	}
	if req.Role != "" {
		if req.Role != "user" && req.Role != "admin" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "role must be user or admin", nil)
		}
		dc.Role = req.Role
	}

	if err := s.departmentRepository.Update(ctx, dc); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update department code", err)
	}
	return dc, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	dc, err := s.departmentRepository.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to get department code", err)
	}
	if dc == nil {
		return errors.NewAppError(errors.ErrNotFound, "department code not found", nil)
	}
	if err := s.departmentRepository.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete department code", err)
	}
	return nil
}

// VerifyCode reports whether a code belongs to a known department. Unknown
// codes are a valid=false response, not an error, so the endpoint does not
// leak which codes exist through status codes.
func (s *DepartmentService) VerifyCode(ctx context.Context, code string) (*dto.VerifyCodeResponse, *errors.AppError) {
	dc, appErr := s.Lookup(ctx, code)
	if appErr != nil {
		return nil, appErr
	}
	if dc == nil {
		return &dto.VerifyCodeResponse{Valid: false}, nil
	}
	return &dto.VerifyCodeResponse{
		Valid:          true,
		DepartmentName: dc.DepartmentName,
		Role:           dc.Role,
	}, nil
}

// Lookup normalizes the code and fetches its row; nil,nil means unknown.
func (s *DepartmentService) Lookup(ctx context.Context, code string) (*entity.DepartmentCode, *errors.AppError) {
	normalized := entity.NormalizeCode(code)
	if normalized == "" {
		return nil, nil
	}
	dc, err := s.departmentRepository.GetByCode(ctx, normalized)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up department code", err)
	}
	return dc, nil
}
