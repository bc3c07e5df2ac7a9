package constants

import "time"

// Context keys.
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Database pool defaults.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Admin session tokens.
const (
	AdminTokenTTL = 8 * time.Hour
)

// Scheduling defaults, used when the settings store has no override.
const (
	DefaultOperatingStart      = "08:00"
	DefaultOperatingEnd        = "17:00"
	DefaultSlotDurationMinutes = 30
	DefaultAdvanceBookingDays  = 30
	DefaultCancellationLeadHrs = 0
)

// SlotDurations are the only slot lengths the settings store accepts.
var SlotDurations = []int{15, 30, 60}

// Asynq task types.
const (
	TaskTypeBookingConfirmed = "notification:booking_confirmed"
	TaskTypeBookingCancelled = "notification:booking_cancelled"
)

// Redis cache keys.
const (
	CacheKeySettings    = "settings:scheduling"
	CacheSettingsTTL    = 5 * time.Minute
	CacheKeyRoomsPrefix = "rooms:"
)
