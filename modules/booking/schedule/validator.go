package schedule

import (
	"time"

	"room-booking-api/core/errors"
	"room-booking-api/modules/booking/entity"

	"github.com/google/uuid"
)

// Proposal is a booking candidate to validate against a room's existing
// reservations.
type Proposal struct {
	RoomID uuid.UUID
	Date   entity.Date
	Start  entity.TimeOfDay
	End    entity.TimeOfDay

	// ExcludeID removes one reservation from the conflict set, so an edit
	// does not collide with the reservation it is replacing. uuid.Nil means
	// no exclusion.
	ExcludeID uuid.UUID
}

// ValidateBooking decides whether the proposal may be admitted. It rejects a
// degenerate interval with InvalidInterval, and a past start or an overlap
// with any confirmed reservation with SlotUnavailable. It has no side
// effects: admission itself is the caller's job, and the caller must perform
// the reservations-read and the insert as one atomic unit, or two concurrent
// bookers can both pass against a stale read.
func ValidateBooking(p Proposal, existing []entity.Reservation, now time.Time) *errors.AppError {
	if p.Start >= p.End {
		return errors.NewAppError(errors.ErrInvalidInterval, "start time must be before end time", nil)
	}

	if isPastStart(p.Date, p.Start, now) {
		return errors.NewAppError(errors.ErrSlotUnavailable, "requested time is in the past", nil)
	}

	for i := range existing {
		r := &existing[i]
		if r.ID == p.ExcludeID {
			continue
		}
		if r.IsConfirmed() && r.Overlaps(p.Start, p.End) {
			return errors.NewAppError(errors.ErrSlotUnavailable, "slot overlaps an existing booking", nil)
		}
	}
	return nil
}

// isPastStart applies the same past-time rule the availability evaluator
// uses: any earlier date, or today with a start at or before the current time
// of day.
func isPastStart(date entity.Date, start entity.TimeOfDay, now time.Time) bool {
	today := entity.DateFrom(now)
	if date.Before(today) {
		return true
	}
	return date.Equal(today) && start <= entity.TimeOfDayFrom(now)
}
