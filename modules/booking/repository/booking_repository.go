package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"room-booking-api/core/database"
	coreentity "room-booking-api/core/entity"
	apperrors "room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/params"
	"room-booking-api/modules/booking/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BookingRepository struct {
	db database.IDatabase
}

func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{db: db}
}

type PaginatedReservations = coreentity.Pagination[entity.Reservation]

// ListFilter narrows a booking list; nil fields match everything.
type ListFilter struct {
	RoomID *uuid.UUID
	Date   *entity.Date
	Status *entity.ReservationStatus
}

type BookingRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	ListForRoomDate(ctx context.Context, roomID uuid.UUID, date entity.Date) ([]entity.Reservation, error)
	ListAll(ctx context.Context, filter ListFilter, queryParams params.QueryParams) (*PaginatedReservations, error)
	AdmitInTx(ctx context.Context, res *entity.Reservation, revalidate func(existing []entity.Reservation) *apperrors.AppError) (*entity.Reservation, *apperrors.AppError)
	UpdateInTx(ctx context.Context, res *entity.Reservation, revalidate func(existing []entity.Reservation) *apperrors.AppError) *apperrors.AppError
	Cancel(ctx context.Context, id uuid.UUID) error
}

const bookingColumns = `id, room_id, date, start_time, end_time, start_minutes, end_minutes,
	status, title, description, user_name, user_email, user_phone,
	department_code, contact_person, contact_email, created_at, updated_at`

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.db.GetContext(ctx, &res, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByID", err)
		return nil, err
	}
	return &res, nil
}

func (r *BookingRepository) ListForRoomDate(ctx context.Context, roomID uuid.UUID, date entity.Date) ([]entity.Reservation, error) {
	var out []entity.Reservation
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE room_id = $1 AND date = $2 ORDER BY start_minutes`
	if err := r.db.SelectContext(ctx, &out, query, roomID, date); err != nil {
		logger.Error("BookingRepository:ListForRoomDate", err)
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) ListAll(ctx context.Context, filter ListFilter, queryParams params.QueryParams) (*PaginatedReservations, error) {
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize

	baseQuery := `FROM bookings`
	var clauses []string
	args := []any{}
	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		clauses = append(clauses, fmt.Sprintf("room_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		clauses = append(clauses, fmt.Sprintf("date = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(clauses) > 0 {
		baseQuery += ` WHERE ` + strings.Join(clauses, " AND ")
	}

	var totalItems int
	if err := r.db.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, args...); err != nil {
		logger.Error("BookingRepository:ListAll:Count", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s %s ORDER BY date DESC, start_minutes LIMIT $%d OFFSET $%d`,
		bookingColumns, baseQuery, len(args)+1, len(args)+2)
	args = append(args, queryParams.PageSize, offset)

	var items []entity.Reservation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("BookingRepository:ListAll:Select", err)
		return nil, err
	}
	if items == nil {
		items = []entity.Reservation{}
	}

	return &PaginatedReservations{
		Items:      items,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

// AdmitInTx inserts a reservation with the read-validate-insert sequence in
// one serializable transaction. The revalidate callback sees the room/date
// reservation set as read inside the transaction, so the decision and the
// insert commit or fail together. Even if two admissions race past
// revalidation, the bookings_no_overlap exclusion constraint lets at most
// one commit; the loser surfaces as SlotUnavailable.
func (r *BookingRepository) AdmitInTx(ctx context.Context, res *entity.Reservation, revalidate func(existing []entity.Reservation) *apperrors.AppError) (*entity.Reservation, *apperrors.AppError) {
	tx, err := r.db.SQLx().BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.Error("BookingRepository:AdmitInTx:Begin", err)
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "failed to start booking transaction", err)
	}
	defer tx.Rollback()

	var existing []entity.Reservation
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE room_id = $1 AND date = $2 ORDER BY start_minutes`
	if err := tx.SelectContext(ctx, &existing, query, res.RoomID, res.Date); err != nil {
		logger.Error("BookingRepository:AdmitInTx:Select", err)
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "failed to read existing bookings", err)
	}

	if appErr := revalidate(existing); appErr != nil {
		return nil, appErr
	}

	insert := `
		INSERT INTO bookings (room_id, date, start_time, end_time, start_minutes, end_minutes,
			status, title, description, user_name, user_email, user_phone,
			department_code, contact_person, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + bookingColumns

	var created entity.Reservation
	err = tx.GetContext(ctx, &created, insert,
		res.RoomID, res.Date, res.StartTime, res.EndTime, int(res.StartTime), int(res.EndTime),
		res.Status, res.Title, res.Description, res.UserName, res.UserEmail, res.UserPhone,
		res.DepartmentCode, res.ContactPerson, res.ContactEmail)
	if err != nil {
		return nil, admissionError("BookingRepository:AdmitInTx:Insert", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, admissionError("BookingRepository:AdmitInTx:Commit", err)
	}
	return &created, nil
}

// UpdateInTx rewrites a reservation's interval and details under the same
// transactional discipline as AdmitInTx. The callback receives the room/date
// set including the reservation being edited; excluding it from conflict
// checks is the callback's job.
func (r *BookingRepository) UpdateInTx(ctx context.Context, res *entity.Reservation, revalidate func(existing []entity.Reservation) *apperrors.AppError) *apperrors.AppError {
	tx, err := r.db.SQLx().BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.Error("BookingRepository:UpdateInTx:Begin", err)
		return apperrors.NewAppError(apperrors.ErrInternalServer, "failed to start booking transaction", err)
	}
	defer tx.Rollback()

	var existing []entity.Reservation
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE room_id = $1 AND date = $2 ORDER BY start_minutes`
	if err := tx.SelectContext(ctx, &existing, query, res.RoomID, res.Date); err != nil {
		logger.Error("BookingRepository:UpdateInTx:Select", err)
		return apperrors.NewAppError(apperrors.ErrInternalServer, "failed to read existing bookings", err)
	}

	if appErr := revalidate(existing); appErr != nil {
		return appErr
	}

	update := `
		UPDATE bookings
		SET date = $2, start_time = $3, end_time = $4, start_minutes = $5, end_minutes = $6,
			title = $7, description = $8, updated_at = NOW()
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, update,
		res.ID, res.Date, res.StartTime, res.EndTime, int(res.StartTime), int(res.EndTime),
		res.Title, res.Description)
	if err != nil {
		return admissionError("BookingRepository:UpdateInTx:Update", err)
	}

	if err := tx.Commit(); err != nil {
		return admissionError("BookingRepository:UpdateInTx:Commit", err)
	}
	return nil
}

// Cancel soft-deletes: the row stays, the status flips. Repeating it on an
// already-cancelled reservation is a no-op, which is what makes cancellation
// idempotent at the API level.
func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET status = 'cancelled', updated_at = NOW() WHERE id = $1 AND status <> 'cancelled'`
	if err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("BookingRepository:Cancel", err)
		return err
	}
	return nil
}

// admissionError maps storage failures from the admission path. An exclusion
// violation (23P01) means a concurrent booking won the slot; a serialization
// failure (40001) means the snapshot this decision was made on is stale.
// Both are reported as SlotUnavailable so racing clients see the same
// outcome as a pre-detected conflict.
func admissionError(stage string, err error) *apperrors.AppError {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23P01", "40001":
			logger.Warn(stage+":Conflict", "pq_code", string(pqErr.Code))
			return apperrors.NewAppError(apperrors.ErrSlotUnavailable, "slot was taken by a concurrent booking", err)
		}
	}
	logger.Error(stage, err)
	return apperrors.NewAppError(apperrors.ErrInternalServer, "failed to write booking", err)
}
