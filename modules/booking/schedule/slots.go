// Package schedule is the room-availability and booking-conflict engine. All
// functions are pure: they take the reservation set and "now" as arguments,
// perform no I/O, and are safe for any number of concurrent callers.
package schedule

import (
	"room-booking-api/modules/booking/entity"
)

// GenerateSlots produces the ordered candidate slots covering
// [operatingStart, operatingEnd) in steps of slotMinutes. A final partial
// slot that would overrun operatingEnd is dropped, not padded. Slot duration
// validity (positive, from the allowed set) is enforced by the settings
// collaborator; a non-positive duration here yields no slots rather than an
// infinite loop.
func GenerateSlots(operatingStart, operatingEnd entity.TimeOfDay, slotMinutes int) []entity.TimeSlot {
	if slotMinutes <= 0 {
		return nil
	}

	var slots []entity.TimeSlot
	for start := operatingStart; start < operatingEnd; start += entity.TimeOfDay(slotMinutes) {
		end := start + entity.TimeOfDay(slotMinutes)
		if end > operatingEnd {
			break
		}
		slots = append(slots, entity.TimeSlot{
			Time:      start,
			End:       end,
			Available: true,
		})
	}
	return slots
}
