package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time stored as minutes since midnight. Bookings
// carry no time zone; all values follow the deployment's local convention.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" (seconds, if present, are ignored). Hours
// need not be zero padded.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	// Drop a seconds component by cutting at the second colon; a fixed-width
	// cut would mangle non-padded inputs like "9:00:00".
	if i := strings.IndexByte(s, ':'); i >= 0 {
		if j := strings.IndexByte(s[i+1:], ':'); j >= 0 {
			s = s[:i+1+j]
		}
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayFrom extracts the wall-clock minutes of an instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid time of day %s", data)
	}
	parsed, err := ParseTimeOfDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value stores the canonical "HH:MM" text form.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(value any) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}
