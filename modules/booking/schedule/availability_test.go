package schedule

import (
	"testing"
	"time"

	"room-booking-api/modules/booking/entity"

	"github.com/google/uuid"
)

func mustDate(t *testing.T, s string) entity.Date {
	t.Helper()
	d, err := entity.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func reservation(t *testing.T, room uuid.UUID, date, start, end string, status entity.ReservationStatus) entity.Reservation {
	t.Helper()
	return entity.Reservation{
		ID:        uuid.New(),
		RoomID:    room,
		Date:      mustDate(t, date),
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
		Status:    status,
	}
}

func findSlot(t *testing.T, slots []entity.TimeSlot, start string) entity.TimeSlot {
	t.Helper()
	want := mustTime(t, start)
	for _, s := range slots {
		if s.Time == want {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return entity.TimeSlot{}
}

// The end-to-end scenario from the availability contract: room R on
// 2024-06-10, operating 08:00-17:00 in 30m slots, one confirmed booking
// 09:00-10:30.
func TestEvaluateAvailabilityScenario(t *testing.T) {
	room := uuid.New()
	date := mustDate(t, "2024-06-10")
	existing := []entity.Reservation{
		reservation(t, room, "2024-06-10", "09:00", "10:30", entity.StatusConfirmed),
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) // well before the date

	slots := GenerateSlots(mustTime(t, "08:00"), mustTime(t, "17:00"), 30)
	if len(slots) != 18 {
		t.Fatalf("got %d candidate slots, want 18", len(slots))
	}
	annotated := EvaluateAvailability(slots, existing, date, now)

	for _, blocked := range []string{"09:00", "09:30", "10:00"} {
		slot := findSlot(t, annotated, blocked)
		if slot.Available {
			t.Errorf("slot %s should be blocked by the 09:00-10:30 booking", blocked)
		}
		if slot.Booking == nil {
			t.Errorf("slot %s should carry the blocking reservation", blocked)
		}
	}

	// Half-open semantics: the slot starting exactly at the booking's end is
	// free.
	if slot := findSlot(t, annotated, "10:30"); !slot.Available {
		t.Error("slot 10:30 should be available (booking end is exclusive)")
	}
	if slot := findSlot(t, annotated, "08:00"); !slot.Available {
		t.Error("slot 08:00 should be available")
	}
}

func TestEvaluateAvailabilityPastRules(t *testing.T) {
	date := mustDate(t, "2024-06-10")
	slots := GenerateSlots(mustTime(t, "08:00"), mustTime(t, "17:00"), 30)

	tests := []struct {
		name          string
		now           time.Time
		slot          string
		wantAvailable bool
	}{
		{
			name:          "slot already begun today",
			now:           time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC),
			slot:          "14:00",
			wantAvailable: false,
		},
		{
			name:          "next slot today still open",
			now:           time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC),
			slot:          "14:30",
			wantAvailable: true,
		},
		{
			name:          "slot starting exactly now counts as past",
			now:           time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC),
			slot:          "14:30",
			wantAvailable: false,
		},
		{
			name:          "whole day in the past",
			now:           time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			slot:          "16:30",
			wantAvailable: false,
		},
		{
			name:          "future date unaffected by time of day",
			now:           time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC),
			slot:          "08:00",
			wantAvailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotated := EvaluateAvailability(slots, nil, date, tt.now)
			slot := findSlot(t, annotated, tt.slot)
			if slot.Available != tt.wantAvailable {
				t.Errorf("slot %s available = %v, want %v", tt.slot, slot.Available, tt.wantAvailable)
			}
			if slot.Booking != nil {
				t.Errorf("past-only slot %s should not carry a blocking reservation", tt.slot)
			}
		})
	}
}

func TestEvaluateAvailabilityIgnoresCancelled(t *testing.T) {
	room := uuid.New()
	date := mustDate(t, "2024-06-10")
	existing := []entity.Reservation{
		reservation(t, room, "2024-06-10", "09:00", "10:30", entity.StatusCancelled),
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	slots := EvaluateAvailability(GenerateSlots(mustTime(t, "08:00"), mustTime(t, "17:00"), 30), existing, date, now)
	for _, start := range []string{"09:00", "09:30", "10:00"} {
		if slot := findSlot(t, slots, start); !slot.Available {
			t.Errorf("slot %s blocked by a cancelled reservation", start)
		}
	}
}
