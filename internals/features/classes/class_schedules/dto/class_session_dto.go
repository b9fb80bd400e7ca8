// file: internals/features/classes/class_schedules/dto/class_session_dto.go
package dto

import (
	"time"

	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"

	"github.com/google/uuid"
)

/* ======================================================
   Requests
====================================================== */

// POST /api/a/sessions
type CreateClassSessionRequest struct {
	ClassID   uuid.UUID  `json:"class_sessions_class_id" validate:"required"`
	TrainerID *uuid.UUID `json:"class_sessions_trainer_id"`

	StartAt time.Time `json:"class_sessions_start_at" validate:"required"`
	EndAt   time.Time `json:"class_sessions_end_at" validate:"required,gtfield=StartAt"`

	MaxCapacity int `json:"class_sessions_max_capacity" validate:"required,gt=0"`
}

// PATCH /api/a/sessions/:id/status
type UpdateClassSessionStatusRequest struct {
	Status scheduleModel.ClassSessionStatus `json:"class_sessions_status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

type ListClassSessionQuery struct {
	ClassID  *uuid.UUID `query:"class_id"`
	DateFrom *time.Time `query:"date_from"`
	DateTo   *time.Time `query:"date_to"`
	OnlyOpen *bool      `query:"only_open"` // scheduled + masih ada spot
}

/* ======================================================
   Responses
====================================================== */

type ClassSessionResponse struct {
	SessionID uuid.UUID  `json:"class_sessions_id"`
	ClassID   uuid.UUID  `json:"class_sessions_class_id"`
	TrainerID *uuid.UUID `json:"class_sessions_trainer_id,omitempty"`

	StartAt time.Time `json:"class_sessions_start_at"`
	EndAt   time.Time `json:"class_sessions_end_at"`

	Status scheduleModel.ClassSessionStatus `json:"class_sessions_status"`

	MaxCapacity     int `json:"class_sessions_max_capacity"`
	CurrentBookings int `json:"class_sessions_current_bookings"`
	AvailableSpots  int `json:"class_sessions_available_spots"`
	WaitlistCount   int `json:"class_sessions_waitlist_count"`
	CheckedInCount  int `json:"class_sessions_checked_in_count"`
}

func FromClassSessionModel(m *scheduleModel.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		SessionID:       m.ClassSessionsID,
		ClassID:         m.ClassSessionsClassID,
		TrainerID:       m.ClassSessionsTrainerID,
		StartAt:         m.ClassSessionsStartAt,
		EndAt:           m.ClassSessionsEndAt,
		Status:          m.ClassSessionsStatus,
		MaxCapacity:     m.ClassSessionsMaxCapacity,
		CurrentBookings: m.ClassSessionsCurrentBookings,
		AvailableSpots:  m.AvailableSpots(),
		WaitlistCount:   m.ClassSessionsWaitlistCount,
		CheckedInCount:  m.ClassSessionsCheckedInCount,
	}
}

func FromClassSessionModels(ms []scheduleModel.ClassSessionModel) []ClassSessionResponse {
	out := make([]ClassSessionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromClassSessionModel(&ms[i]))
	}
	return out
}
