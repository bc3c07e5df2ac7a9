package repository

import (
	"context"
	"database/sql"
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/modules/room/entity"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db database.IDatabase
}

func NewRoomRepository(db database.IDatabase) *RoomRepository {
	return &RoomRepository{db: db}
}

type RoomRepositoryInterface interface {
	Create(ctx context.Context, room *entity.Room) (*entity.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Room, error)
	List(ctx context.Context) ([]entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const roomColumns = `id, slug, name, capacity, description, amenities, color, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	query := `
		INSERT INTO rooms (slug, name, capacity, description, amenities, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + roomColumns

	var created entity.Room
	err := r.db.GetContext(ctx, &created, query,
		room.Slug, room.Name, room.Capacity, room.Description, room.Amenities, room.Color)
	if err != nil {
		logger.Error("RoomRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := r.db.GetContext(ctx, &room, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetByID", err)
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetBySlug(ctx context.Context, slug string) (*entity.Room, error) {
	var room entity.Room
	err := r.db.GetContext(ctx, &room, `SELECT `+roomColumns+` FROM rooms WHERE slug = $1`, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetBySlug", err)
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]entity.Room, error) {
	var rooms []entity.Room
	err := r.db.SelectContext(ctx, &rooms, `SELECT `+roomColumns+` FROM rooms ORDER BY name`)
	if err != nil {
		logger.Error("RoomRepository:List", err)
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET slug = $2, name = $3, capacity = $4, description = $5, amenities = $6, color = $7, updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query,
		room.ID, room.Slug, room.Name, room.Capacity, room.Description, room.Amenities, room.Color)
	if err != nil {
		logger.Error("RoomRepository:Update", err)
	}
	return err
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		logger.Error("RoomRepository:Delete", err)
	}
	return err
}
