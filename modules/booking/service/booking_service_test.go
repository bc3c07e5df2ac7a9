package service

import (
	"context"
	"testing"
	"time"

	"room-booking-api/core/errors"
	"room-booking-api/core/params"
	"room-booking-api/modules/booking/dto"
	"room-booking-api/modules/booking/entity"
	"room-booking-api/modules/booking/repository"
	"room-booking-api/modules/booking/schedule"
	roomdto "room-booking-api/modules/room/dto"
	roomentity "room-booking-api/modules/room/entity"
	settingsentity "room-booking-api/modules/settings/entity"

	"github.com/google/uuid"
)

// fakeBookingRepo keeps reservations in memory and mimics the transactional
// admission path: revalidate against the current set, then append.
type fakeBookingRepo struct {
	reservations []entity.Reservation
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			r := f.reservations[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListForRoomDate(_ context.Context, roomID uuid.UUID, date entity.Date) ([]entity.Reservation, error) {
	var out []entity.Reservation
	for _, r := range f.reservations {
		if r.RoomID == roomID && r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context, filter repository.ListFilter, queryParams params.QueryParams) (*repository.PaginatedReservations, error) {
	var items []entity.Reservation
	for _, r := range f.reservations {
		if filter.RoomID != nil && r.RoomID != *filter.RoomID {
			continue
		}
		if filter.Date != nil && !r.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		items = append(items, r)
	}
	return &repository.PaginatedReservations{
		Items:      items,
		TotalItems: len(items),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (f *fakeBookingRepo) AdmitInTx(_ context.Context, res *entity.Reservation, revalidate func([]entity.Reservation) *errors.AppError) (*entity.Reservation, *errors.AppError) {
	var existing []entity.Reservation
	for _, r := range f.reservations {
		if r.RoomID == res.RoomID && r.Date.Equal(res.Date) {
			existing = append(existing, r)
		}
	}
	if appErr := revalidate(existing); appErr != nil {
		return nil, appErr
	}
	created := *res
	created.ID = uuid.New()
	f.reservations = append(f.reservations, created)
	return &created, nil
}

func (f *fakeBookingRepo) UpdateInTx(_ context.Context, res *entity.Reservation, revalidate func([]entity.Reservation) *errors.AppError) *errors.AppError {
	var existing []entity.Reservation
	for _, r := range f.reservations {
		if r.RoomID == res.RoomID && r.Date.Equal(res.Date) {
			existing = append(existing, r)
		}
	}
	if appErr := revalidate(existing); appErr != nil {
		return appErr
	}
	for i := range f.reservations {
		if f.reservations[i].ID == res.ID {
			f.reservations[i] = *res
			return nil
		}
	}
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id uuid.UUID) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = entity.StatusCancelled
		}
	}
	return nil
}

type fakeRoomService struct {
	room roomentity.Room
}

func (f *fakeRoomService) Create(context.Context, *roomdto.CreateRoomRequest) (*roomentity.Room, *errors.AppError) {
	return nil, nil
}
func (f *fakeRoomService) GetByID(_ context.Context, id uuid.UUID) (*roomentity.Room, *errors.AppError) {
	if id != f.room.ID {
		return nil, errors.NewAppError(errors.ErrNotFound, "room not found", nil)
	}
	r := f.room
	return &r, nil
}
func (f *fakeRoomService) List(context.Context) ([]roomentity.Room, *errors.AppError) { return nil, nil }
func (f *fakeRoomService) Update(context.Context, uuid.UUID, *roomdto.UpdateRoomRequest) (*roomentity.Room, *errors.AppError) {
	return nil, nil
}
func (f *fakeRoomService) Delete(context.Context, uuid.UUID) *errors.AppError { return nil }

type fakeSettingsService struct {
	settings settingsentity.SchedulingSettings
}

func (f *fakeSettingsService) GetScheduling(context.Context) (*settingsentity.SchedulingSettings, *errors.AppError) {
	s := f.settings
	return &s, nil
}
func (f *fakeSettingsService) UpdateScheduling(context.Context, *settingsentity.SchedulingSettings) *errors.AppError {
	return nil
}

func mustTime(t *testing.T, s string) entity.TimeOfDay {
	t.Helper()
	v, err := entity.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return v
}

// newFixture returns a service over in-memory fakes with a 2026-03-02 Monday
// 09:00 clock, open 08:00-17:00 weekdays.
func newFixture(t *testing.T) (*BookingService, *fakeBookingRepo, uuid.UUID) {
	t.Helper()

	roomID := uuid.New()
	open := settingsentity.OperatingHours{
		Start:   mustTime(t, "08:00"),
		End:     mustTime(t, "17:00"),
		Enabled: true,
	}
	closed := open
	closed.Enabled = false

	repo := &fakeBookingRepo{}
	svc := NewBookingService(
		repo,
		&fakeRoomService{room: roomentity.Room{ID: roomID, Name: "Boardroom"}},
		&fakeSettingsService{settings: settingsentity.SchedulingSettings{
			Weekdays:            open,
			Saturday:            closed,
			Sunday:              closed,
			SlotDurationMinutes: 30,
			AdvanceBookingDays:  30,
		}},
		nil,
	)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	}
	return svc, repo, roomID
}

func createReq(roomID uuid.UUID, date, start, end string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		RoomID:    roomID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Title:     "standup",
		UserName:  "Alice",
		UserEmail: "alice@example.com",
	}
}

func TestCreateAdmitsAndRejectsOverlap(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	first, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "10:00", "11:00"))
	if appErr != nil {
		t.Fatalf("first create: %v", appErr)
	}
	if first.Status != entity.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", first.Status)
	}

	cases := []struct {
		name       string
		start, end string
		wantCode   errors.ErrorCode
	}{
		{"identical interval", "10:00", "11:00", errors.ErrSlotUnavailable},
		{"straddles start", "09:30", "10:30", errors.ErrSlotUnavailable},
		{"contained", "10:15", "10:45", errors.ErrSlotUnavailable},
		{"contains", "09:00", "12:00", errors.ErrSlotUnavailable},
		{"adjacent before", "09:00", "10:00", ""},
		{"adjacent after", "11:00", "12:00", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", tc.start, tc.end))
			if tc.wantCode == "" {
				if appErr != nil {
					t.Fatalf("create: %v", appErr)
				}
				return
			}
			if appErr == nil || appErr.Code != tc.wantCode {
				t.Fatalf("create = %v, want code %s", appErr, tc.wantCode)
			}
		})
	}
}

func TestCreateRejectsPastStart(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	// Clock is 09:00 on 2026-03-02. A slot starting exactly now is past.
	for _, tc := range []struct {
		name       string
		date       string
		start, end string
	}{
		{"yesterday", "2026-03-01", "10:00", "11:00"},
		{"earlier today", "2026-03-02", "08:00", "09:00"},
		{"starting exactly now", "2026-03-02", "09:00", "10:00"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, appErr := svc.Create(ctx, createReq(roomID, tc.date, tc.start, tc.end))
			if tc.date == "2026-03-01" {
				// Sunday is closed, so the closed-day rejection fires first.
				if appErr == nil {
					t.Fatal("expected rejection")
				}
				return
			}
			if appErr == nil || appErr.Code != errors.ErrSlotUnavailable {
				t.Fatalf("create = %v, want SLOT_UNAVAILABLE", appErr)
			}
		})
	}

	// Later today is fine.
	if _, appErr := svc.Create(ctx, createReq(roomID, "2026-03-02", "09:30", "10:00")); appErr != nil {
		t.Fatalf("future slot today: %v", appErr)
	}
}

func TestCreateRejectsDegenerateInterval(t *testing.T) {
	svc, _, roomID := newFixture(t)

	for _, tc := range [][2]string{{"10:00", "10:00"}, {"11:00", "10:00"}} {
		_, appErr := svc.Create(context.Background(), createReq(roomID, "2026-03-03", tc[0], tc[1]))
		if appErr == nil || appErr.Code != errors.ErrInvalidInterval {
			t.Fatalf("create(%s-%s) = %v, want INVALID_INTERVAL", tc[0], tc[1], appErr)
		}
	}
}

func TestCreatePolicyChecks(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	t.Run("closed day", func(t *testing.T) {
		_, appErr := svc.Create(ctx, createReq(roomID, "2026-03-07", "10:00", "11:00"))
		if appErr == nil || appErr.Code != errors.ErrSlotUnavailable {
			t.Fatalf("create = %v, want SLOT_UNAVAILABLE", appErr)
		}
	})

	t.Run("outside operating hours", func(t *testing.T) {
		_, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "07:00", "09:00"))
		if appErr == nil || appErr.Code != errors.ErrInvalidInput {
			t.Fatalf("create = %v, want INVALID_INPUT", appErr)
		}
	})

	t.Run("beyond advance window", func(t *testing.T) {
		_, appErr := svc.Create(ctx, createReq(roomID, "2026-04-02", "10:00", "11:00"))
		if appErr == nil || appErr.Code != errors.ErrOutsideBookingWindow {
			t.Fatalf("create = %v, want OUTSIDE_BOOKING_WINDOW", appErr)
		}
	})

	t.Run("window boundary is inclusive", func(t *testing.T) {
		if _, appErr := svc.Create(ctx, createReq(roomID, "2026-04-01", "10:00", "11:00")); appErr != nil {
			t.Fatalf("create on window edge: %v", appErr)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		_, appErr := svc.Create(ctx, createReq(uuid.New(), "2026-03-03", "10:00", "11:00"))
		if appErr == nil || appErr.Code != errors.ErrNotFound {
			t.Fatalf("create = %v, want NOT_FOUND", appErr)
		}
	})
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, repo, roomID := newFixture(t)
	ctx := context.Background()

	created, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "10:00", "11:00"))
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	cred := schedule.OwnerCredential{UserEmail: "alice@example.com"}
	if appErr := svc.Cancel(ctx, created.ID, cred); appErr != nil {
		t.Fatalf("first cancel: %v", appErr)
	}
	if appErr := svc.Cancel(ctx, created.ID, cred); appErr != nil {
		t.Fatalf("second cancel should be a no-op, got %v", appErr)
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.Status != entity.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", stored.Status)
	}

	// The slot is free again.
	if _, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "10:00", "11:00")); appErr != nil {
		t.Fatalf("rebook after cancel: %v", appErr)
	}
}

func TestCancelAuthorization(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	code := "IT"
	req := createReq(roomID, "2026-03-03", "10:00", "11:00")
	req.DepartmentCode = &code
	created, appErr := svc.Create(ctx, req)
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	cases := []struct {
		name     string
		cred     schedule.Credential
		wantCode errors.ErrorCode
	}{
		{"owner exact match", schedule.OwnerCredential{UserEmail: "alice@example.com"}, ""},
		{"owner case mismatch", schedule.OwnerCredential{UserEmail: "Alice@Example.com"}, errors.ErrWrongOwner},
		{"owner wrong email", schedule.OwnerCredential{UserEmail: "bob@example.com"}, errors.ErrWrongOwner},
		{"department trimmed and folded", schedule.DepartmentCredential{Code: "  it "}, ""},
		{"department wrong code", schedule.DepartmentCredential{Code: "hr"}, errors.ErrWrongDepartmentCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := svc.Cancel(ctx, created.ID, tc.cred)
			if tc.wantCode == "" {
				if appErr != nil {
					t.Fatalf("cancel: %v", appErr)
				}
				return
			}
			if appErr == nil || appErr.Code != tc.wantCode {
				t.Fatalf("cancel = %v, want code %s", appErr, tc.wantCode)
			}
		})
	}
}

func TestCancelMissingOwnershipData(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	created, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "10:00", "11:00"))
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	// No department code on file: the department channel fails closed.
	appErr = svc.Cancel(ctx, created.ID, schedule.DepartmentCredential{Code: "it"})
	if appErr == nil || appErr.Code != errors.ErrMissingOwnershipData {
		t.Fatalf("cancel = %v, want MISSING_OWNERSHIP_DATA", appErr)
	}
}

func TestCancelLeadTime(t *testing.T) {
	svc, _, roomID := newFixture(t)
	fake := svc.settingsService.(*fakeSettingsService)
	fake.settings.CancellationLeadHrs = 2
	ctx := context.Background()

	// 10:00 today is within the 2 hour lead at 09:00.
	created, appErr := svc.Create(ctx, createReq(roomID, "2026-03-02", "10:00", "11:00"))
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	appErr = svc.Cancel(ctx, created.ID, schedule.OwnerCredential{UserEmail: "alice@example.com"})
	if appErr == nil || appErr.Code != errors.ErrCancellationTooLate {
		t.Fatalf("cancel = %v, want CANCELLATION_TOO_LATE", appErr)
	}

	// Admins are not bound by the lead time.
	if appErr := svc.CancelAsAdmin(ctx, created.ID); appErr != nil {
		t.Fatalf("admin cancel: %v", appErr)
	}
}

func TestUpdateRevalidatesExcludingSelf(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	first, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "10:00", "11:00"))
	if appErr != nil {
		t.Fatalf("create first: %v", appErr)
	}
	if _, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "13:00", "14:00")); appErr != nil {
		t.Fatalf("create second: %v", appErr)
	}

	cred := dto.CredentialPayload{UserEmail: "alice@example.com"}
	str := func(s string) *string { return &s }

	t.Run("shifting within own slot succeeds", func(t *testing.T) {
		updated, appErr := svc.Update(ctx, first.ID, &dto.UpdateBookingRequest{
			StartTime:  str("10:30"),
			EndTime:    str("11:30"),
			Credential: cred,
		})
		if appErr != nil {
			t.Fatalf("update: %v", appErr)
		}
		if updated.StartTime.String() != "10:30" || updated.EndTime.String() != "11:30" {
			t.Fatalf("interval = %s-%s, want 10:30-11:30", updated.StartTime, updated.EndTime)
		}
	})

	t.Run("moving onto another booking conflicts", func(t *testing.T) {
		_, appErr := svc.Update(ctx, first.ID, &dto.UpdateBookingRequest{
			StartTime:  str("13:30"),
			EndTime:    str("14:30"),
			Credential: cred,
		})
		if appErr == nil || appErr.Code != errors.ErrSlotUnavailable {
			t.Fatalf("update = %v, want SLOT_UNAVAILABLE", appErr)
		}
	})

	t.Run("wrong credential is denied", func(t *testing.T) {
		_, appErr := svc.Update(ctx, first.ID, &dto.UpdateBookingRequest{
			Title:      str("new title"),
			Credential: dto.CredentialPayload{UserEmail: "bob@example.com"},
		})
		if appErr == nil || appErr.Code != errors.ErrWrongOwner {
			t.Fatalf("update = %v, want WRONG_OWNER", appErr)
		}
	})
}

func TestCredentialFrom(t *testing.T) {
	cases := []struct {
		name     string
		payload  dto.CredentialPayload
		wantErr  bool
		wantKind string
	}{
		{"owner", dto.CredentialPayload{UserEmail: "a@b.c"}, false, "owner"},
		{"department", dto.CredentialPayload{DepartmentCode: "it"}, false, "department"},
		{"both", dto.CredentialPayload{UserEmail: "a@b.c", DepartmentCode: "it"}, true, ""},
		{"neither", dto.CredentialPayload{}, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cred, appErr := CredentialFrom(tc.payload)
			if tc.wantErr {
				if appErr == nil || appErr.Code != errors.ErrInvalidInput {
					t.Fatalf("CredentialFrom = %v, want INVALID_INPUT", appErr)
				}
				return
			}
			if appErr != nil {
				t.Fatalf("CredentialFrom: %v", appErr)
			}
			switch cred.(type) {
			case schedule.OwnerCredential:
				if tc.wantKind != "owner" {
					t.Fatalf("got owner credential, want %s", tc.wantKind)
				}
			case schedule.DepartmentCredential:
				if tc.wantKind != "department" {
					t.Fatalf("got department credential, want %s", tc.wantKind)
				}
			}
		})
	}
}

func TestListAllFilters(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	first, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "10:00", "11:00"))
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if _, appErr := svc.Create(ctx, createReq(roomID, "2026-03-04", "10:00", "11:00")); appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if appErr := svc.CancelAsAdmin(ctx, first.ID); appErr != nil {
		t.Fatalf("cancel: %v", appErr)
	}

	paging := params.QueryParams{PageNumber: 1, PageSize: 20}

	page, appErr := svc.ListAll(ctx, ListQuery{Status: "confirmed"}, paging)
	if appErr != nil {
		t.Fatalf("list: %v", appErr)
	}
	if page.TotalItems != 1 {
		t.Fatalf("confirmed total = %d, want 1", page.TotalItems)
	}

	page, appErr = svc.ListAll(ctx, ListQuery{Date: "2026-03-03"}, paging)
	if appErr != nil {
		t.Fatalf("list: %v", appErr)
	}
	if page.TotalItems != 1 || page.Items[0].Status != entity.StatusCancelled {
		t.Fatalf("date filter = %d items, want the cancelled one", page.TotalItems)
	}

	if _, appErr := svc.ListAll(ctx, ListQuery{Status: "bogus"}, paging); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("bogus status = %v, want INVALID_INPUT", appErr)
	}
}

func TestGetAvailability(t *testing.T) {
	svc, _, roomID := newFixture(t)
	ctx := context.Background()

	if _, appErr := svc.Create(ctx, createReq(roomID, "2026-03-03", "09:00", "10:30")); appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	resp, appErr := svc.GetAvailability(ctx, roomID, "2026-03-03")
	if appErr != nil {
		t.Fatalf("availability: %v", appErr)
	}
	if len(resp.Slots) != 18 {
		t.Fatalf("len(slots) = %d, want 18", len(resp.Slots))
	}

	want := map[string]bool{
		"08:30": true,
		"09:00": false,
		"09:30": false,
		"10:00": false,
		"10:30": true,
	}
	for _, slot := range resp.Slots {
		expected, ok := want[slot.Time]
		if !ok {
			continue
		}
		if slot.Available != expected {
			t.Errorf("slot %s available = %v, want %v", slot.Time, slot.Available, expected)
		}
	}

	t.Run("closed day yields no slots", func(t *testing.T) {
		resp, appErr := svc.GetAvailability(ctx, roomID, "2026-03-07")
		if appErr != nil {
			t.Fatalf("availability: %v", appErr)
		}
		if len(resp.Slots) != 0 || resp.Hours.Enabled {
			t.Fatalf("got %d slots, enabled=%v; want closed empty day", len(resp.Slots), resp.Hours.Enabled)
		}
	})
}
