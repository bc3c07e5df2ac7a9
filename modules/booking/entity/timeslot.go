package entity

// TimeSlot is a derived, never-persisted candidate booking interval
// [Time, End) within operating hours, annotated by the availability
// evaluator. Booking points at the blocking reservation when the slot is
// taken; it stays nil for slots that are merely in the past.
type TimeSlot struct {
	Time      TimeOfDay    `json:"time"`
	End       TimeOfDay    `json:"end"`
	Available bool         `json:"available"`
	Booking   *Reservation `json:"booking,omitempty"`
}
