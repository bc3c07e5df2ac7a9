package errors

import "fmt"

// ErrorCode identifies an application error category. Codes are stable API:
// clients branch on them, so they never carry formatted detail.
type ErrorCode string

const (
	// Scheduling domain codes.
	ErrInvalidInterval      ErrorCode = "INVALID_INTERVAL"
	ErrSlotUnavailable      ErrorCode = "SLOT_UNAVAILABLE"
	ErrWrongOwner           ErrorCode = "WRONG_OWNER"
	ErrWrongDepartmentCode  ErrorCode = "WRONG_DEPARTMENT_CODE"
	ErrMissingOwnershipData ErrorCode = "MISSING_OWNERSHIP_DATA"
	ErrOutsideBookingWindow ErrorCode = "OUTSIDE_BOOKING_WINDOW"
	ErrCancellationTooLate  ErrorCode = "CANCELLATION_TOO_LATE"

	// Transport / infrastructure codes.
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrForbidden      ErrorCode = "FORBIDDEN"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// AppError is the typed error returned by services. Message is a terse,
// developer-facing description; translation to user-facing text is the
// caller's job.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match two AppErrors by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
