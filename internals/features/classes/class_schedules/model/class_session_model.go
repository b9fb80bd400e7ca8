// file: internals/features/classes/class_schedules/model/class_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM: class_session_status
====================================================== */

type ClassSessionStatus string

const (
	ClassSessionScheduled  ClassSessionStatus = "scheduled"
	ClassSessionInProgress ClassSessionStatus = "in_progress"
	ClassSessionCompleted  ClassSessionStatus = "completed"
	ClassSessionCancelled  ClassSessionStatus = "cancelled"
)

/* ======================================================
   Model: class_sessions
   Satu occurrence kelas terjadwal. Counter kapasitas
   (current_bookings/waitlist_count/checked_in_count) HANYA
   boleh dimutasi lewat transaksi booking service — invariant:
   current_bookings <= max_capacity, tidak pernah negatif.
====================================================== */

type ClassSessionModel struct {
	ClassSessionsID     uuid.UUID `gorm:"column:class_sessions_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_sessions_id"`
	ClassSessionsClubID uuid.UUID `gorm:"column:class_sessions_club_id;type:uuid;not null;index" json:"class_sessions_club_id"`
	ClassSessionsClassID uuid.UUID `gorm:"column:class_sessions_class_id;type:uuid;not null;index" json:"class_sessions_class_id"`

	ClassSessionsTrainerID *uuid.UUID `gorm:"column:class_sessions_trainer_id;type:uuid" json:"class_sessions_trainer_id,omitempty"`

	ClassSessionsStartAt time.Time `gorm:"column:class_sessions_start_at;type:timestamptz;not null;index" json:"class_sessions_start_at"`
	ClassSessionsEndAt   time.Time `gorm:"column:class_sessions_end_at;type:timestamptz;not null" json:"class_sessions_end_at"`

	// Kapasitas & counters
	ClassSessionsMaxCapacity     int `gorm:"column:class_sessions_max_capacity;type:int;not null" json:"class_sessions_max_capacity"`
	ClassSessionsCurrentBookings int `gorm:"column:class_sessions_current_bookings;type:int;not null;default:0" json:"class_sessions_current_bookings"`
	ClassSessionsWaitlistCount   int `gorm:"column:class_sessions_waitlist_count;type:int;not null;default:0" json:"class_sessions_waitlist_count"`
	ClassSessionsCheckedInCount  int `gorm:"column:class_sessions_checked_in_count;type:int;not null;default:0" json:"class_sessions_checked_in_count"`

	ClassSessionsStatus ClassSessionStatus `gorm:"column:class_sessions_status;type:class_session_status;not null;default:'scheduled'" json:"class_sessions_status"`

	// Optimistic lock: naik 1 setiap mutasi counter. Update counter
	// selalu pakai guard WHERE lock_version = ? (lihat booking service).
	ClassSessionsLockVersion int64 `gorm:"column:class_sessions_lock_version;type:bigint;not null;default:0" json:"class_sessions_lock_version"`

	ClassSessionsCreatedAt time.Time      `gorm:"column:class_sessions_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"class_sessions_created_at"`
	ClassSessionsUpdatedAt time.Time      `gorm:"column:class_sessions_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"class_sessions_updated_at"`
	ClassSessionsDeletedAt gorm.DeletedAt `gorm:"column:class_sessions_deleted_at;index" json:"class_sessions_deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string {
	return "class_sessions"
}

// AvailableSpots: sisa slot confirmed.
func (s *ClassSessionModel) AvailableSpots() int {
	n := s.ClassSessionsMaxCapacity - s.ClassSessionsCurrentBookings
	if n < 0 {
		return 0
	}
	return n
}
