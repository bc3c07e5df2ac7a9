package service

import (
	"context"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/params"
	"room-booking-api/modules/notification/dto"
	"room-booking-api/modules/notification/entity"
	"room-booking-api/modules/notification/repository"
	"strings"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

type NotificationServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) error
	GetByDepartment(ctx context.Context, departmentCode string, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError)
	MarkAsRead(ctx context.Context, departmentCode string, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, departmentCode string) *errors.AppError
	CountUnread(ctx context.Context, departmentCode string) (int, *errors.AppError)
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	code := normalizeCode(req.DepartmentCode)
	if code == "" {
		// Bookings without a department code have no recipient to notify.
		return nil
	}
	notif := &entity.Notification{
		DepartmentCode: code,
		Title:          req.Title,
		Message:        req.Message,
		Type:           req.Type,
		Data:           entity.JSONB(req.Data),
		IsRead:         false,
	}
	if err := s.repo.Create(ctx, notif); err != nil {
		return err
	}
	logger.Info("NotificationService:Create:Success", "id", notif.ID, "type", notif.Type)
	return nil
}

func (s *NotificationService) GetByDepartment(ctx context.Context, departmentCode string, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError) {
	code := normalizeCode(departmentCode)
	if code == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "department code is required", nil)
	}
	page, err := s.repo.GetByDepartment(ctx, code, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get notifications", err)
	}
	return page, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, departmentCode string, ids []string) *errors.AppError {
	code := normalizeCode(departmentCode)
	if code == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "department code is required", nil)
	}
	if err := s.repo.MarkAsRead(ctx, code, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, departmentCode string) *errors.AppError {
	code := normalizeCode(departmentCode)
	if code == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "department code is required", nil)
	}
	if err := s.repo.MarkAllAsRead(ctx, code); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, departmentCode string) (int, *errors.AppError) {
	code := normalizeCode(departmentCode)
	if code == "" {
		return 0, errors.NewAppError(errors.ErrInvalidInput, "department code is required", nil)
	}
	count, err := s.repo.CountUnread(ctx, code)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to count unread notifications", err)
	}
	return count, nil
}
