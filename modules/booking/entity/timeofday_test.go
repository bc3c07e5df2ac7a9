package entity

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "08:00", want: 480},
		{in: "00:00", want: 0},
		{in: "17:00", want: 1020},
		{in: "09:30:00", want: 570}, // seconds from the store are ignored
		{in: "9:00", want: 540},     // hours need not be zero padded
		{in: "9:00:00", want: 540},
		{in: "9:05:30", want: 545},
		{in: "24:00", wantErr: true},
		{in: "9am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", tt.in, err)
			continue
		}
		if got.Minutes() != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d minutes, want %d", tt.in, got.Minutes(), tt.want)
		}
	}
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:00", "09:30", "23:45"} {
		tod, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
		}
		if tod.String() != s {
			t.Errorf("round trip %q -> %q", s, tod.String())
		}
	}
}

func TestTimeOfDayFromTruncatesSeconds(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 5, 59, 0, time.UTC)
	if got := TimeOfDayFrom(now); got.String() != "14:05" {
		t.Errorf("TimeOfDayFrom = %s, want 14:05", got)
	}
}

func TestDateOrdering(t *testing.T) {
	earlier, _ := ParseDate("2024-06-09")
	later, _ := ParseDate("2024-06-10")

	if !earlier.Before(later) {
		t.Error("2024-06-09 should be before 2024-06-10")
	}
	if later.Before(earlier) {
		t.Error("2024-06-10 should not be before 2024-06-09")
	}
	if !later.Equal(later) {
		t.Error("a date should equal itself")
	}
	if got := earlier.AddDays(1); !got.Equal(later) {
		t.Errorf("AddDays(1) = %s, want %s", got, later)
	}
}

func TestReservationOverlapsHalfOpen(t *testing.T) {
	start, _ := ParseTimeOfDay("09:00")
	end, _ := ParseTimeOfDay("10:30")
	r := Reservation{StartTime: start, EndTime: end}

	cases := []struct {
		s, e string
		want bool
	}{
		{"10:30", "11:00", false}, // starts at reservation end: no overlap
		{"08:00", "09:00", false}, // ends at reservation start: no overlap
		{"10:00", "11:00", true},
		{"08:30", "09:30", true},
		{"09:30", "10:00", true},
	}
	for _, c := range cases {
		s, _ := ParseTimeOfDay(c.s)
		e, _ := ParseTimeOfDay(c.e)
		if got := r.Overlaps(s, e); got != c.want {
			t.Errorf("Overlaps(%s, %s) = %v, want %v", c.s, c.e, got, c.want)
		}
	}
}
