package repository

import (
	"errors"
	"testing"

	apperrors "room-booking-api/core/errors"

	"github.com/lib/pq"
)

// The two storage-level loser signals of a racing admission, exclusion
// violation and serialization failure, must surface with the same code as a
// pre-detected conflict; everything else is an internal error.
func TestAdmissionErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode apperrors.ErrorCode
	}{
		{"exclusion violation", &pq.Error{Code: "23P01"}, apperrors.ErrSlotUnavailable},
		{"serialization failure", &pq.Error{Code: "40001"}, apperrors.ErrSlotUnavailable},
		{"unique violation", &pq.Error{Code: "23505"}, apperrors.ErrInternalServer},
		{"non-pq error", errors.New("connection reset by peer"), apperrors.ErrInternalServer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := admissionError("BookingRepository:AdmitInTx:Insert", tc.err)
			if appErr == nil {
				t.Fatal("admissionError returned nil")
			}
			if appErr.Code != tc.wantCode {
				t.Fatalf("code = %s, want %s", appErr.Code, tc.wantCode)
			}
			if !errors.Is(appErr, tc.err) {
				t.Fatal("cause should be preserved for unwrapping")
			}
		})
	}
}
