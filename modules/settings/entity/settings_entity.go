package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	bookingentity "room-booking-api/modules/booking/entity"

	"github.com/google/uuid"
)

// SystemSetting is one key/value row in the settings store.
type SystemSetting struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Key         string    `db:"key" json:"key"`
	Value       JSONB     `db:"value" json:"value"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description,omitempty"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

// OperatingHours is one day-type's bookable window.
type OperatingHours struct {
	Start   bookingentity.TimeOfDay `json:"start"`
	End     bookingentity.TimeOfDay `json:"end"`
	Enabled bool                    `json:"enabled"`
}

// SchedulingSettings is the typed view of the scheduling category the booking
// flow consumes. The core engine receives these values as plain arguments; it
// never reads the store itself.
type SchedulingSettings struct {
	Weekdays            OperatingHours `json:"weekdays"`
	Saturday            OperatingHours `json:"saturday"`
	Sunday              OperatingHours `json:"sunday"`
	SlotDurationMinutes int            `json:"slot_duration_minutes"`
	AdvanceBookingDays  int            `json:"advance_booking_days"`
	CancellationLeadHrs int            `json:"cancellation_lead_hours"`
}

// HoursFor selects the operating window for a date's day type.
func (s *SchedulingSettings) HoursFor(date bookingentity.Date) OperatingHours {
	switch date.Time(time.UTC).Weekday() {
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return s.Weekdays
	}
}
