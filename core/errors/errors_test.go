package errors

import (
	stderrors "errors"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewAppError(ErrSlotUnavailable, "slot overlaps an existing booking", nil),
			want: "SLOT_UNAVAILABLE: slot overlaps an existing booking",
		},
		{
			name: "with cause",
			err:  NewAppError(ErrInternalServer, "query failed", stderrors.New("connection reset")),
			want: "INTERNAL_SERVER_ERROR: query failed: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppErrorIsMatchesByCode(t *testing.T) {
	err := NewAppError(ErrWrongDepartmentCode, "code does not match", nil)
	if !stderrors.Is(err, NewAppError(ErrWrongDepartmentCode, "", nil)) {
		t.Error("expected errors.Is to match AppErrors with the same code")
	}
	if stderrors.Is(err, NewAppError(ErrWrongOwner, "", nil)) {
		t.Error("expected errors.Is to reject AppErrors with different codes")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := NewAppError(ErrNotFound, "booking not found", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap chain to reach the cause")
	}
}
