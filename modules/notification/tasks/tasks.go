package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"room-booking-api/core/constants"
	"room-booking-api/core/logger"
	"room-booking-api/modules/notification/dto"
	"room-booking-api/modules/notification/service"

	"github.com/hibiken/asynq"
)

// BookingEventPayload is the queue payload for booking lifecycle events.
// Times are the display strings, not minutes, so the worker does not need
// the scheduling types.
type BookingEventPayload struct {
	BookingID      string `json:"booking_id"`
	RoomName       string `json:"room_name"`
	DepartmentCode string `json:"department_code"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Title          string `json:"title"`
}

func NewBookingConfirmedTask(p BookingEventPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskTypeBookingConfirmed, payload), nil
}

func NewBookingCancelledTask(p BookingEventPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskTypeBookingCancelled, payload), nil
}

// Handler turns queued booking events into notification rows.
type Handler struct {
	notificationService service.NotificationServiceInterface
}

func NewHandler(notificationService service.NotificationServiceInterface) *Handler {
	return &Handler{notificationService: notificationService}
}

func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskTypeBookingConfirmed, h.HandleBookingConfirmed)
	mux.HandleFunc(constants.TaskTypeBookingCancelled, h.HandleBookingCancelled)
}

func (h *Handler) HandleBookingConfirmed(ctx context.Context, t *asynq.Task) error {
	var p BookingEventPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal booking confirmed payload: %w", err)
	}
	logger.Info("Tasks:BookingConfirmed", "booking_id", p.BookingID)

	return h.notificationService.Create(ctx, &dto.CreateNotificationRequest{
		DepartmentCode: p.DepartmentCode,
		Title:          "Booking confirmed",
		Message:        fmt.Sprintf("%s is booked on %s from %s to %s", p.RoomName, p.Date, p.StartTime, p.EndTime),
		Type:           "booking_confirmed",
		Data: map[string]interface{}{
			"booking_id": p.BookingID,
			"title":      p.Title,
		},
	})
}

func (h *Handler) HandleBookingCancelled(ctx context.Context, t *asynq.Task) error {
	var p BookingEventPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal booking cancelled payload: %w", err)
	}
	logger.Info("Tasks:BookingCancelled", "booking_id", p.BookingID)

	return h.notificationService.Create(ctx, &dto.CreateNotificationRequest{
		DepartmentCode: p.DepartmentCode,
		Title:          "Booking cancelled",
		Message:        fmt.Sprintf("The booking for %s on %s from %s to %s was cancelled", p.RoomName, p.Date, p.StartTime, p.EndTime),
		Type:           "booking_cancelled",
		Data: map[string]interface{}{
			"booking_id": p.BookingID,
			"title":      p.Title,
		},
	})
}
