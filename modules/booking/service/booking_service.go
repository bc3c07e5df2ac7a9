package service

import (
	"context"
	"time"

	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/middleware"
	"room-booking-api/core/params"
	"room-booking-api/modules/booking/dto"
	"room-booking-api/modules/booking/entity"
	"room-booking-api/modules/booking/repository"
	"room-booking-api/modules/booking/schedule"
	"room-booking-api/modules/notification/tasks"
	roomservice "room-booking-api/modules/room/service"
	settingsentity "room-booking-api/modules/settings/entity"
	settingsservice "room-booking-api/modules/settings/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type BookingService struct {
	bookingRepository repository.BookingRepositoryInterface
	roomService       roomservice.RoomServiceInterface
	settingsService   settingsservice.SettingsServiceInterface
	queue             *asynq.Client

	// now is injectable so the past-time and window rules are testable.
	now func() time.Time
}

func NewBookingService(
	bookingRepository repository.BookingRepositoryInterface,
	roomService roomservice.RoomServiceInterface,
	settingsService settingsservice.SettingsServiceInterface,
	queue *asynq.Client,
) *BookingService {
	return &BookingService{
		bookingRepository: bookingRepository,
		roomService:       roomService,
		settingsService:   settingsService,
		queue:             queue,
		now:               time.Now,
	}
}

type BookingServiceInterface interface {
	GetAvailability(ctx context.Context, roomID uuid.UUID, dateStr string) (*dto.AvailabilityResponse, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*entity.Reservation, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, *errors.AppError)
	ListForRoomDate(ctx context.Context, roomID uuid.UUID, dateStr string) ([]entity.Reservation, *errors.AppError)
	ListAll(ctx context.Context, filter ListQuery, queryParams params.QueryParams) (*repository.PaginatedReservations, *errors.AppError)
	Cancel(ctx context.Context, id uuid.UUID, cred schedule.Credential) *errors.AppError
	CancelAsAdmin(ctx context.Context, id uuid.UUID) *errors.AppError
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*entity.Reservation, *errors.AppError)
}

// GetAvailability returns the annotated slot sequence for one room and date.
// A day whose operating window is disabled yields an empty slot list, not an
// error.
func (s *BookingService) GetAvailability(ctx context.Context, roomID uuid.UUID, dateStr string) (*dto.AvailabilityResponse, *errors.AppError) {
	date, err := entity.ParseDate(dateStr)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
	}

	if _, appErr := s.roomService.GetByID(ctx, roomID); appErr != nil {
		return nil, appErr
	}

	settings, appErr := s.settingsService.GetScheduling(ctx)
	if appErr != nil {
		return nil, appErr
	}
	hours := settings.HoursFor(date)

	resp := &dto.AvailabilityResponse{
		RoomID: roomID,
		Date:   date.String(),
		Slots:  []dto.SlotResponse{},
		Hours: dto.OperatingWindow{
			Start:   hours.Start.String(),
			End:     hours.End.String(),
			Enabled: hours.Enabled,
		},
	}
	if !hours.Enabled {
		return resp, nil
	}

	reservations, err := s.bookingRepository.ListForRoomDate(ctx, roomID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to read bookings", err)
	}

	slots := schedule.GenerateSlots(hours.Start, hours.End, settings.SlotDurationMinutes)
	for _, slot := range schedule.EvaluateAvailability(slots, reservations, date, s.now()) {
		resp.Slots = append(resp.Slots, dto.SlotResponse{
			Time:      slot.Time.String(),
			End:       slot.End.String(),
			Available: slot.Available,
			Booking:   slot.Booking,
		})
	}
	return resp, nil
}

// Create admits a new reservation. Policy checks that need only the request
// and settings run first; the overlap decision runs inside the storage
// transaction so it cannot go stale between validation and insert.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*entity.Reservation, *errors.AppError) {
	logger.Info("BookingService:Create:Start", "room_id", req.RoomID, "date", req.Date)

	date, start, end, appErr := parseInterval(req.Date, req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}

	if _, appErr := s.roomService.GetByID(ctx, req.RoomID); appErr != nil {
		return nil, appErr
	}

	settings, appErr := s.settingsService.GetScheduling(ctx)
	if appErr != nil {
		return nil, appErr
	}
	now := s.now()
	if appErr := s.checkSchedulingPolicy(settings, date, start, end, now); appErr != nil {
		middleware.RecordAdmission("rejected")
		return nil, appErr
	}

	res := &entity.Reservation{
		RoomID:         req.RoomID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Status:         entity.StatusConfirmed,
		Title:          req.Title,
		Description:    req.Description,
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		UserPhone:      req.UserPhone,
		DepartmentCode: req.DepartmentCode,
		ContactPerson:  req.ContactPerson,
		ContactEmail:   req.ContactEmail,
	}

	proposal := schedule.Proposal{RoomID: req.RoomID, Date: date, Start: start, End: end}
	created, appErr := s.bookingRepository.AdmitInTx(ctx, res, func(existing []entity.Reservation) *errors.AppError {
		return schedule.ValidateBooking(proposal, existing, now)
	})
	if appErr != nil {
		if appErr.Code == errors.ErrSlotUnavailable {
			middleware.RecordAdmission("conflict")
		} else {
			middleware.RecordAdmission("rejected")
		}
		return nil, appErr
	}
	middleware.RecordAdmission("admitted")

	s.notify(ctx, created, false)
	logger.Info("BookingService:Create:Success", "id", created.ID)
	return created, nil
}

func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, *errors.AppError) {
	res, err := s.bookingRepository.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get booking", err)
	}
	if res == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "booking not found", nil)
	}
	return res, nil
}

func (s *BookingService) ListForRoomDate(ctx context.Context, roomID uuid.UUID, dateStr string) ([]entity.Reservation, *errors.AppError) {
	date, err := entity.ParseDate(dateStr)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
	}
	reservations, repoErr := s.bookingRepository.ListForRoomDate(ctx, roomID, date)
	if repoErr != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list bookings", repoErr)
	}
	if reservations == nil {
		reservations = []entity.Reservation{}
	}
	return reservations, nil
}

// ListQuery is the string-typed list filter as it arrives from the HTTP
// layer; empty fields are no filter.
type ListQuery struct {
	RoomID string
	Date   string
	Status string
}

func (s *BookingService) ListAll(ctx context.Context, query ListQuery, queryParams params.QueryParams) (*repository.PaginatedReservations, *errors.AppError) {
	var filter repository.ListFilter
	if query.RoomID != "" {
		id, err := uuid.Parse(query.RoomID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid room id", err)
		}
		filter.RoomID = &id
	}
	if query.Date != "" {
		d, err := entity.ParseDate(query.Date)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
		}
		filter.Date = &d
	}
	if query.Status != "" {
		status := entity.ReservationStatus(query.Status)
		switch status {
		case entity.StatusPending, entity.StatusConfirmed, entity.StatusCancelled:
		default:
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid status", nil)
		}
		filter.Status = &status
	}

	page, err := s.bookingRepository.ListAll(ctx, filter, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list bookings", err)
	}
	return page, nil
}

// Cancel soft-deletes a reservation after authorization. Cancelling an
// already-cancelled reservation succeeds without touching storage, so
// retried cancellations are safe.
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID, cred schedule.Credential) *errors.AppError {
	res, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return appErr
	}

	if appErr := schedule.Authorize(res, cred); appErr != nil {
		logger.Warn("BookingService:Cancel:Denied", "id", id, "code", appErr.Code)
		return appErr
	}

	return s.cancel(ctx, res, true)
}

// CancelAsAdmin skips reservation-level authorization; the admin session was
// already verified by the route middleware. The lead-time rule does not
// apply to administrators.
func (s *BookingService) CancelAsAdmin(ctx context.Context, id uuid.UUID) *errors.AppError {
	res, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return appErr
	}
	return s.cancel(ctx, res, false)
}

func (s *BookingService) cancel(ctx context.Context, res *entity.Reservation, enforceLeadTime bool) *errors.AppError {
	if res.Status == entity.StatusCancelled {
		logger.Info("BookingService:Cancel:AlreadyCancelled", "id", res.ID)
		return nil
	}

	if enforceLeadTime {
		settings, appErr := s.settingsService.GetScheduling(ctx)
		if appErr != nil {
			return appErr
		}
		if lead := settings.CancellationLeadHrs; lead > 0 {
			startAt := res.Date.Time(s.now().Location()).Add(time.Duration(res.StartTime) * time.Minute)
			if s.now().Add(time.Duration(lead) * time.Hour).After(startAt) {
				return errors.NewAppError(errors.ErrCancellationTooLate, "too close to the booking start to cancel", nil)
			}
		}
	}

	if err := s.bookingRepository.Cancel(ctx, res.ID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to cancel booking", err)
	}

	s.notify(ctx, res, true)
	logger.Info("BookingService:Cancel:Success", "id", res.ID)
	return nil
}

// Update edits a reservation in place. The edit is authorized with the same
// credential rules as cancellation, then re-validated as if it were a new
// booking with the edited reservation excluded from the conflict set.
func (s *BookingService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*entity.Reservation, *errors.AppError) {
	res, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	cred, appErr := CredentialFrom(req.Credential)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := schedule.Authorize(res, cred); appErr != nil {
		logger.Warn("BookingService:Update:Denied", "id", id, "code", appErr.Code)
		return nil, appErr
	}

	if res.Status == entity.StatusCancelled {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cannot edit a cancelled booking", nil)
	}

	date, start, end := res.Date, res.StartTime, res.EndTime
	if req.Date != nil {
		d, err := entity.ParseDate(*req.Date)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
		}
		date = d
	}
	if req.StartTime != nil {
		t, err := entity.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid start time", err)
		}
		start = t
	}
	if req.EndTime != nil {
		t, err := entity.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid end time", err)
		}
		end = t
	}
	if req.Title != nil {
		res.Title = *req.Title
	}
	if req.Description != nil {
		res.Description = req.Description
	}

	settings, appErr := s.settingsService.GetScheduling(ctx)
	if appErr != nil {
		return nil, appErr
	}
	now := s.now()
	if appErr := s.checkSchedulingPolicy(settings, date, start, end, now); appErr != nil {
		return nil, appErr
	}

	res.Date, res.StartTime, res.EndTime = date, start, end

	proposal := schedule.Proposal{RoomID: res.RoomID, Date: date, Start: start, End: end, ExcludeID: res.ID}
	appErr = s.bookingRepository.UpdateInTx(ctx, res, func(existing []entity.Reservation) *errors.AppError {
		return schedule.ValidateBooking(proposal, existing, now)
	})
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("BookingService:Update:Success", "id", id)
	return res, nil
}

// checkSchedulingPolicy enforces the settings-derived rules that are not
// part of conflict validation: the day must be open, the interval must fit
// the operating window, and the date must fall inside the advance-booking
// window.
func (s *BookingService) checkSchedulingPolicy(settings *settingsentity.SchedulingSettings, date entity.Date, start, end entity.TimeOfDay, now time.Time) *errors.AppError {
	hours := settings.HoursFor(date)
	if !hours.Enabled {
		return errors.NewAppError(errors.ErrSlotUnavailable, "the room is closed on this day", nil)
	}
	if start < hours.Start || end > hours.End {
		return errors.NewAppError(errors.ErrInvalidInput, "interval is outside operating hours", nil)
	}
	if settings.AdvanceBookingDays > 0 {
		limit := entity.DateFrom(now).AddDays(settings.AdvanceBookingDays)
		if date.After(limit) {
			return errors.NewAppError(errors.ErrOutsideBookingWindow, "date is beyond the advance booking window", nil)
		}
	}
	return nil
}

// CredentialFrom maps the request payload to an authorization credential.
// Exactly one mode must be present.
func CredentialFrom(p dto.CredentialPayload) (schedule.Credential, *errors.AppError) {
	hasOwner := p.UserEmail != ""
	hasDept := p.DepartmentCode != ""
	switch {
	case hasOwner && hasDept:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "provide either user_email or department_code, not both", nil)
	case hasOwner:
		return schedule.OwnerCredential{UserEmail: p.UserEmail}, nil
	case hasDept:
		return schedule.DepartmentCredential{Code: p.DepartmentCode}, nil
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "a credential is required", nil)
	}
}

// notify enqueues the lifecycle notification. Best effort: a queue outage
// must not fail the booking operation that already committed.
func (s *BookingService) notify(ctx context.Context, res *entity.Reservation, cancelled bool) {
	if s.queue == nil {
		return
	}

	roomName := res.RoomID.String()
	if room, appErr := s.roomService.GetByID(ctx, res.RoomID); appErr == nil {
		roomName = room.Name
	}

	payload := tasks.BookingEventPayload{
		BookingID:      res.ID.String(),
		RoomName:       roomName,
		DepartmentCode: res.NormalizedDepartmentCode(),
		Date:           res.Date.String(),
		StartTime:      res.StartTime.String(),
		EndTime:        res.EndTime.String(),
		Title:          res.Title,
	}

	var task *asynq.Task
	var err error
	if cancelled {
		task, err = tasks.NewBookingCancelledTask(payload)
	} else {
		task, err = tasks.NewBookingConfirmedTask(payload)
	}
	if err == nil {
		_, err = s.queue.EnqueueContext(ctx, task)
	}
	if err != nil {
		logger.Warn("BookingService:Notify:EnqueueFailed", "booking_id", res.ID, "error", err)
	}
}

func parseInterval(dateStr, startStr, endStr string) (entity.Date, entity.TimeOfDay, entity.TimeOfDay, *errors.AppError) {
	date, err := entity.ParseDate(dateStr)
	if err != nil {
		return entity.Date{}, 0, 0, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
	}
	start, err := entity.ParseTimeOfDay(startStr)
	if err != nil {
		return entity.Date{}, 0, 0, errors.NewAppError(errors.ErrInvalidInput, "invalid start time", err)
	}
	end, err := entity.ParseTimeOfDay(endStr)
	if err != nil {
		return entity.Date{}, 0, 0, errors.NewAppError(errors.ErrInvalidInput, "invalid end time", err)
	}
	return date, start, end, nil
}
