package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	// StatusPending is reserved for a future approval workflow; no code path
	// produces it today.
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a booking of one room for a half-open time window
// [StartTime, EndTime) on a calendar day. Cancellation is a soft delete:
// records never leave the table, they transition to cancelled.
type Reservation struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	RoomID       uuid.UUID         `db:"room_id" json:"room_id"`
	Date         Date              `db:"date" json:"date"`
	StartTime    TimeOfDay         `db:"start_time" json:"start_time"`
	EndTime      TimeOfDay         `db:"end_time" json:"end_time"`
	StartMinutes int               `db:"start_minutes" json:"-"`
	EndMinutes   int               `db:"end_minutes" json:"-"`
	Status       ReservationStatus `db:"status" json:"status"`
	Title        string            `db:"title" json:"title"`
	Description  *string           `db:"description" json:"description,omitempty"`

	// Ownership identity: UserEmail for owner-credential bookings,
	// DepartmentCode for department-channel bookings. Exactly one is the
	// authoritative credential; both may be present for display.
	UserName       string  `db:"user_name" json:"user_name"`
	UserEmail      string  `db:"user_email" json:"user_email"`
	UserPhone      string  `db:"user_phone" json:"user_phone"`
	DepartmentCode *string `db:"department_code" json:"department_code,omitempty"`
	ContactPerson  *string `db:"contact_person" json:"contact_person,omitempty"`
	ContactEmail   *string `db:"contact_email" json:"contact_email,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Overlaps reports whether the reservation's interval shares any instant with
// [start, end) under half-open semantics.
func (r *Reservation) Overlaps(start, end TimeOfDay) bool {
	return r.StartTime < end && start < r.EndTime
}

// IsConfirmed reports whether the reservation participates in the non-overlap
// invariant and in availability computation.
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// NormalizedDepartmentCode returns the stored department code trimmed and
// lower-cased, or "" when no usable code is on file.
func (r *Reservation) NormalizedDepartmentCode() string {
	if r.DepartmentCode == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*r.DepartmentCode))
}
