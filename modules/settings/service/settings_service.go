package service

import (
	"context"
	"encoding/json"

	"room-booking-api/core/constants"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	bookingentity "room-booking-api/modules/booking/entity"
	"room-booking-api/modules/settings/entity"
	"room-booking-api/modules/settings/repository"

	"github.com/redis/go-redis/v9"
)

type SettingsServiceInterface interface {
	GetScheduling(ctx context.Context) (*entity.SchedulingSettings, *errors.AppError)
	UpdateScheduling(ctx context.Context, settings *entity.SchedulingSettings) *errors.AppError
}

type SettingsService struct {
	repo  repository.SettingsRepositoryInterface
	redis *redis.Client
}

func NewSettingsService(repo repository.SettingsRepositoryInterface, rdb *redis.Client) *SettingsService {
	return &SettingsService{repo: repo, redis: rdb}
}

// defaultScheduling applies when the store has no override. Values mirror the
// deployment's historical defaults: 08:00-17:00 in 30 minute slots.
func defaultScheduling() *entity.SchedulingSettings {
	start, _ := bookingentity.ParseTimeOfDay(constants.DefaultOperatingStart)
	end, _ := bookingentity.ParseTimeOfDay(constants.DefaultOperatingEnd)
	open := entity.OperatingHours{Start: start, End: end, Enabled: true}
	return &entity.SchedulingSettings{
		Weekdays:            open,
		Saturday:            entity.OperatingHours{Start: start, End: end, Enabled: false},
		Sunday:              entity.OperatingHours{Start: start, End: end, Enabled: false},
		SlotDurationMinutes: constants.DefaultSlotDurationMinutes,
		AdvanceBookingDays:  constants.DefaultAdvanceBookingDays,
		CancellationLeadHrs: constants.DefaultCancellationLeadHrs,
	}
}

// GetScheduling returns the scheduling settings, consulting the Redis cache
// before the store. Cache failures degrade to the database silently.
func (s *SettingsService) GetScheduling(ctx context.Context) (*entity.SchedulingSettings, *errors.AppError) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, constants.CacheKeySettings).Bytes(); err == nil {
			var settings entity.SchedulingSettings
			if err := json.Unmarshal(cached, &settings); err == nil {
				return &settings, nil
			}
		}
	}

	row, err := s.repo.GetByKey(ctx, "scheduling")
	if err != nil {
		logger.Error("SettingsService:GetScheduling:Repo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load scheduling settings", err)
	}

	settings := defaultScheduling()
	if row != nil {
		raw, merr := json.Marshal(row.Value)
		if merr == nil {
			if uerr := json.Unmarshal(raw, settings); uerr != nil {
				logger.Warn("SettingsService:GetScheduling:BadStoredValue", "error", uerr)
				settings = defaultScheduling()
			}
		}
	}

	if !validSlotDuration(settings.SlotDurationMinutes) {
		logger.Warn("SettingsService:GetScheduling:InvalidSlotDuration",
			"slot_duration_minutes", settings.SlotDurationMinutes)
		settings.SlotDurationMinutes = constants.DefaultSlotDurationMinutes
	}

	s.cache(ctx, settings)
	return settings, nil
}

func (s *SettingsService) UpdateScheduling(ctx context.Context, settings *entity.SchedulingSettings) *errors.AppError {
	if !validSlotDuration(settings.SlotDurationMinutes) {
		return errors.NewAppError(errors.ErrInvalidInput, "slot duration must be one of 15, 30, 60", nil)
	}
	for _, hours := range []entity.OperatingHours{settings.Weekdays, settings.Saturday, settings.Sunday} {
		if hours.Start >= hours.End {
			return errors.NewAppError(errors.ErrInvalidInput, "operating start must be before operating end", nil)
		}
	}
	if settings.AdvanceBookingDays < 0 || settings.CancellationLeadHrs < 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "windows must not be negative", nil)
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to encode settings", err)
	}
	var value entity.JSONB
	if err := json.Unmarshal(raw, &value); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to encode settings", err)
	}

	row := &entity.SystemSetting{
		Key:      "scheduling",
		Value:    value,
		Category: "scheduling",
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to save scheduling settings", err)
	}

	if s.redis != nil {
		if err := s.redis.Del(ctx, constants.CacheKeySettings).Err(); err != nil {
			logger.Warn("SettingsService:UpdateScheduling:CacheInvalidate:Error", "error", err)
		}
	}
	logger.Info("SettingsService:UpdateScheduling:Success",
		"slot_duration_minutes", settings.SlotDurationMinutes,
		"advance_booking_days", settings.AdvanceBookingDays)
	return nil
}

func (s *SettingsService) cache(ctx context.Context, settings *entity.SchedulingSettings) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, constants.CacheKeySettings, raw, constants.CacheSettingsTTL).Err(); err != nil {
		logger.Warn("SettingsService:Cache:Error", "error", err)
	}
}

func validSlotDuration(minutes int) bool {
	for _, allowed := range constants.SlotDurations {
		if minutes == allowed {
			return true
		}
	}
	return false
}
