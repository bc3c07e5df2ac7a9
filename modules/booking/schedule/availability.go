package schedule

import (
	"time"

	"room-booking-api/modules/booking/entity"
)

// EvaluateAvailability annotates the slot sequence for one room and date
// against that room's reservations on the date. A slot is unavailable when it
// overlaps a confirmed reservation (the blocking reservation is attached), or
// when it lies in the past: the date is before today, or the date is today
// and the slot starts at or before the current time of day. The "now"
// boundary is inclusive on purpose: a slot starting exactly now is already
// gone.
func EvaluateAvailability(slots []entity.TimeSlot, reservations []entity.Reservation, date entity.Date, now time.Time) []entity.TimeSlot {
	today := entity.DateFrom(now)
	nowTime := entity.TimeOfDayFrom(now)

	out := make([]entity.TimeSlot, len(slots))
	for i, slot := range slots {
		blocking := blockingReservation(reservations, slot.Time, slot.End)

		past := date.Before(today) || (date.Equal(today) && slot.Time <= nowTime)

		out[i] = entity.TimeSlot{
			Time:      slot.Time,
			End:       slot.End,
			Available: blocking == nil && !past,
			Booking:   blocking,
		}
	}
	return out
}

// blockingReservation returns the first confirmed reservation overlapping
// [start, end), or nil. Cancelled (and any future pending) reservations never
// block.
func blockingReservation(reservations []entity.Reservation, start, end entity.TimeOfDay) *entity.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if r.IsConfirmed() && r.Overlaps(start, end) {
			return r
		}
	}
	return nil
}
