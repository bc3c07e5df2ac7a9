package service

import (
	"context"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/entity"
	"room-booking-api/modules/room/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
)

type RoomService struct {
	roomRepository repository.RoomRepositoryInterface
}

func NewRoomService(roomRepository repository.RoomRepositoryInterface) *RoomService {
	return &RoomService{roomRepository: roomRepository}
}

type RoomServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*entity.Room, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, *errors.AppError)
	List(ctx context.Context) ([]entity.Room, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*entity.Room, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

func (s *RoomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*entity.Room, *errors.AppError) {
	logger.Info("RoomService:Create:Start", "name", req.Name)

	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "room name is required", nil)
	}

	roomSlug := slug.Make(req.Name)
	if existing, err := s.roomRepository.GetBySlug(ctx, roomSlug); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check room slug", err)
	} else if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "a room with this name already exists", nil)
	}

	room := &entity.Room{
		Slug:        roomSlug,
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
		Amenities:   pq.StringArray(req.Amenities),
		Color:       req.Color,
	}

	created, err := s.roomRepository.Create(ctx, room)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create room", err)
	}

	logger.Info("RoomService:Create:Success", "id", created.ID, "slug", created.Slug)
	return created, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, *errors.AppError) {
	room, err := s.roomRepository.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "room not found", nil)
	}
	return room, nil
}

func (s *RoomService) List(ctx context.Context) ([]entity.Room, *errors.AppError) {
	rooms, err := s.roomRepository.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list rooms", err)
	}
	if rooms == nil {
		rooms = []entity.Room{}
	}
	return rooms, nil
}

func (s *RoomService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*entity.Room, *errors.AppError) {
	logger.Info("RoomService:Update:Start", "id", id)

	room, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != "" && req.Name != room.Name {
		room.Name = req.Name
		room.Slug = slug.Make(req.Name)
	}
	if req.Capacity > 0 {
		room.Capacity = req.Capacity
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Amenities != nil {
		room.Amenities = pq.StringArray(req.Amenities)
	}
	if req.Color != "" {
		room.Color = req.Color
	}

	if err := s.roomRepository.Update(ctx, room); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update room", err)
	}

	logger.Info("RoomService:Update:Success", "id", id)
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	logger.Info("RoomService:Delete:Start", "id", id)

	room, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return appErr
	}

	if err := s.roomRepository.Delete(ctx, room.ID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete room", err)
	}

	logger.Info("RoomService:Delete:Success", "id", id)
	return nil
}
