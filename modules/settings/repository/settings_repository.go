package repository

import (
	"context"
	"database/sql"
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/modules/settings/entity"
)

type SettingsRepository struct {
	db database.IDatabase
}

func NewSettingsRepository(db database.IDatabase) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type SettingsRepositoryInterface interface {
	GetByKey(ctx context.Context, key string) (*entity.SystemSetting, error)
	GetByCategory(ctx context.Context, category string) ([]entity.SystemSetting, error)
	Upsert(ctx context.Context, setting *entity.SystemSetting) error
}

func (r *SettingsRepository) GetByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	query := `SELECT id, key, value, category, description, updated_at FROM system_settings WHERE key = $1`

	var setting entity.SystemSetting
	err := r.db.GetContext(ctx, &setting, query, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SettingsRepository:GetByKey", err)
		return nil, err
	}
	return &setting, nil
}

func (r *SettingsRepository) GetByCategory(ctx context.Context, category string) ([]entity.SystemSetting, error) {
	query := `SELECT id, key, value, category, description, updated_at FROM system_settings WHERE category = $1 ORDER BY key`

	var settings []entity.SystemSetting
	err := r.db.SelectContext(ctx, &settings, query, category)
	if err != nil {
		logger.Error("SettingsRepository:GetByCategory", err)
		return nil, err
	}
	return settings, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, setting *entity.SystemSetting) error {
	query := `
		INSERT INTO system_settings (key, value, category, description, updated_at)
		VALUES (:key, :value, :category, :description, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.NamedExecContext(ctx, query, setting)
	if err != nil {
		logger.Error("SettingsRepository:Upsert", err)
		return err
	}
	return nil
}
