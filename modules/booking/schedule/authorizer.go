package schedule

import (
	"strings"

	"room-booking-api/core/errors"
	"room-booking-api/modules/booking/entity"
)

// Credential is the identity a caller presents to mutate a reservation.
// Exactly one mode applies per call, selected by the concrete type.
type Credential interface {
	isCredential()
}

// OwnerCredential authorizes by exact match against the reservation's stored
// owner identity (the booking user's email).
type OwnerCredential struct {
	UserEmail string
}

// DepartmentCredential authorizes by the shared department code, compared
// after trimming whitespace and case folding.
type DepartmentCredential struct {
	Code string
}

func (OwnerCredential) isCredential()      {}
func (DepartmentCredential) isCredential() {}

// Authorize decides whether the presented credential may cancel or edit the
// reservation. It returns nil when authorized, and a typed denial otherwise:
// WrongOwner or WrongDepartmentCode for a mismatch, MissingOwnershipData when
// a department credential is presented but the reservation has no usable code
// on file. The missing-data case fails closed; it is a data-integrity fault,
// not a grant.
func Authorize(r *entity.Reservation, cred Credential) *errors.AppError {
	switch c := cred.(type) {
	case OwnerCredential:
		// Owner comparison is exact; the lenient trim/fold rule applies only
		// to department codes.
		if c.UserEmail == "" || c.UserEmail != r.UserEmail {
			return errors.NewAppError(errors.ErrWrongOwner, "caller is not the reservation owner", nil)
		}
		return nil

	case DepartmentCredential:
		stored := r.NormalizedDepartmentCode()
		if stored == "" {
			return errors.NewAppError(errors.ErrMissingOwnershipData, "reservation has no department code on file", nil)
		}
		presented := strings.ToLower(strings.TrimSpace(c.Code))
		if presented == "" || presented != stored {
			return errors.NewAppError(errors.ErrWrongDepartmentCode, "department code does not match", nil)
		}
		return nil

	default:
		return errors.NewAppError(errors.ErrUnauthorized, "unsupported credential", nil)
	}
}
