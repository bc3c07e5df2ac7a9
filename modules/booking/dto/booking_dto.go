package dto

import (
	"room-booking-api/modules/booking/entity"

	"github.com/google/uuid"
)

// CreateBookingRequest admits a new reservation. Times are "HH:MM" strings
// and the interval is half-open: a booking ending 10:00 does not collide
// with one starting 10:00.
type CreateBookingRequest struct {
	RoomID      uuid.UUID `json:"room_id" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	StartTime   string    `json:"start_time" validate:"required"`
	EndTime     string    `json:"end_time" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`

	UserName       string  `json:"user_name"`
	UserEmail      string  `json:"user_email"`
	UserPhone      string  `json:"user_phone"`
	DepartmentCode *string `json:"department_code"`
	ContactPerson  *string `json:"contact_person"`
	ContactEmail   *string `json:"contact_email"`
}

// CredentialPayload selects the authorization mode for cancel and edit.
// Exactly one field must be set; sending both is rejected rather than
// silently preferring one.
type CredentialPayload struct {
	UserEmail      string `json:"user_email"`
	DepartmentCode string `json:"department_code"`
}

type CancelBookingRequest struct {
	Credential CredentialPayload `json:"credential"`
}

// UpdateBookingRequest edits a reservation in place. Interval fields are
// optional; omitted fields keep their stored values. The whole edit is
// re-validated as if it were a new booking, with the edited reservation
// itself excluded from the conflict set.
type UpdateBookingRequest struct {
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Title       *string `json:"title"`
	Description *string `json:"description"`

	Credential CredentialPayload `json:"credential"`
}

// AvailabilityResponse is the annotated slot sequence for one room and date.
type AvailabilityResponse struct {
	RoomID uuid.UUID       `json:"room_id"`
	Date   string          `json:"date"`
	Slots  []SlotResponse  `json:"slots"`
	Hours  OperatingWindow `json:"operating_hours"`
}

type OperatingWindow struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Enabled bool   `json:"enabled"`
}

type SlotResponse struct {
	Time      string              `json:"time"`
	End       string              `json:"end"`
	Available bool                `json:"available"`
	Booking   *entity.Reservation `json:"booking,omitempty"`
}
