package schedule

import (
	"testing"

	"room-booking-api/modules/booking/entity"
)

func mustTime(t *testing.T, s string) entity.TimeOfDay {
	t.Helper()
	tod, err := entity.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return tod
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		slotMinutes int
		wantCount   int
		wantFirst   string
		wantLastEnd string
	}{
		{
			name:        "standard business day 30m",
			start:       "08:00",
			end:         "17:00",
			slotMinutes: 30,
			wantCount:   18,
			wantFirst:   "08:00",
			wantLastEnd: "17:00",
		},
		{
			name:        "hour slots",
			start:       "08:00",
			end:         "17:00",
			slotMinutes: 60,
			wantCount:   9,
			wantFirst:   "08:00",
			wantLastEnd: "17:00",
		},
		{
			name:        "quarter slots",
			start:       "09:00",
			end:         "10:00",
			slotMinutes: 15,
			wantCount:   4,
			wantFirst:   "09:00",
			wantLastEnd: "10:00",
		},
		{
			name:        "final partial slot truncated",
			start:       "08:00",
			end:         "17:20",
			slotMinutes: 30,
			wantCount:   18,
			wantFirst:   "08:00",
			wantLastEnd: "17:00",
		},
		{
			name:        "window shorter than one slot",
			start:       "08:00",
			end:         "08:20",
			slotMinutes: 30,
			wantCount:   0,
		},
		{
			name:        "empty window",
			start:       "08:00",
			end:         "08:00",
			slotMinutes: 30,
			wantCount:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(mustTime(t, tt.start), mustTime(t, tt.end), tt.slotMinutes)
			if len(slots) != tt.wantCount {
				t.Fatalf("got %d slots, want %d", len(slots), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if got := slots[0].Time.String(); got != tt.wantFirst {
				t.Errorf("first slot starts %s, want %s", got, tt.wantFirst)
			}
			if got := slots[len(slots)-1].End.String(); got != tt.wantLastEnd {
				t.Errorf("last slot ends %s, want %s", got, tt.wantLastEnd)
			}
		})
	}
}

func TestGenerateSlotsAreContiguous(t *testing.T) {
	slots := GenerateSlots(mustTime(t, "08:00"), mustTime(t, "17:00"), 30)
	for i := 1; i < len(slots); i++ {
		if slots[i].Time != slots[i-1].End {
			t.Fatalf("slot %d starts %s but previous ends %s", i, slots[i].Time, slots[i-1].End)
		}
	}
	for _, s := range slots {
		if !s.Available {
			t.Errorf("raw slot %s generated unavailable", s.Time)
		}
	}
}

func TestGenerateSlotsRejectsNonPositiveDuration(t *testing.T) {
	for _, minutes := range []int{0, -30} {
		if slots := GenerateSlots(mustTime(t, "08:00"), mustTime(t, "17:00"), minutes); slots != nil {
			t.Errorf("duration %d: got %d slots, want none", minutes, len(slots))
		}
	}
}
