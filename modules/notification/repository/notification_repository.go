package repository

import (
	"context"
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/core/params"
	"room-booking-api/modules/notification/entity"

	"github.com/jmoiron/sqlx"
)

type NotificationRepository struct {
	db database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByDepartment(ctx context.Context, departmentCode string, params params.QueryParams) (*entity.PaginatedNotificationEntity, error)
	MarkAsRead(ctx context.Context, departmentCode string, ids []string) error
	MarkAllAsRead(ctx context.Context, departmentCode string) error
	CountUnread(ctx context.Context, departmentCode string) (int, error)
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (department_code, title, message, type, data, is_read)
		VALUES (:department_code, :title, :message, :type, :data, :is_read)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, notification)
	if err != nil {
		logger.Error("NotificationRepository:Create", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&notification.ID)
	}
	return nil
}

func (r *NotificationRepository) GetByDepartment(ctx context.Context, departmentCode string, params params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM notifications WHERE department_code = $1`

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, departmentCode)
	if err != nil {
		logger.Error("NotificationRepository:GetByDepartment:Count", err)
		return nil, err
	}

	query := `
		SELECT * ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var notifications []entity.Notification
	err = r.db.SelectContext(ctx, &notifications, query, departmentCode, params.PageSize, offset)
	if err != nil {
		logger.Error("NotificationRepository:GetByDepartment:Select", err)
		return nil, err
	}
	if notifications == nil {
		notifications = []entity.Notification{}
	}

	return &entity.PaginatedNotificationEntity{
		Items:      notifications,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, departmentCode string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = true WHERE department_code = ? AND id IN (?)`, departmentCode, ids)
	if err != nil {
		return err
	}

	query = r.db.SQLx().Rebind(query)
	if err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.Error("NotificationRepository:MarkAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, departmentCode string) error {
	query := `UPDATE notifications SET is_read = true WHERE department_code = $1`
	if err := r.db.ExecContext(ctx, query, departmentCode); err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, departmentCode string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE department_code = $1 AND is_read = false`
	if err := r.db.GetContext(ctx, &count, query, departmentCode); err != nil {
		logger.Error("NotificationRepository:CountUnread", err)
		return 0, err
	}
	return count, nil
}
