// file: internals/features/classes/class_schedules/model/gym_class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: gym_classes
   Template kelas/PT (harga drop-in, deadline cancel, fee override)
====================================================== */

type GymClassModel struct {
	GymClassesID     uuid.UUID `gorm:"column:gym_classes_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gym_classes_id"`
	GymClassesClubID uuid.UUID `gorm:"column:gym_classes_club_id;type:uuid;not null;index" json:"gym_classes_club_id"`

	GymClassesName     string `gorm:"column:gym_classes_name;type:varchar(120);not null" json:"gym_classes_name"`
	GymClassesCategory string `gorm:"column:gym_classes_category;type:varchar(50);not null;index" json:"gym_classes_category"`

	// Lokasi (dipakai aturan akses gender & prayer-time)
	GymClassesLocationID uuid.UUID `gorm:"column:gym_classes_location_id;type:uuid;not null;index" json:"gym_classes_location_id"`

	// Pay-per-entry
	GymClassesAllowDropIn       bool  `gorm:"column:gym_classes_allow_drop_in;not null;default:true" json:"gym_classes_allow_drop_in"`
	GymClassesDropInPriceCents  int64 `gorm:"column:gym_classes_drop_in_price_cents;type:bigint;not null;default:0" json:"gym_classes_drop_in_price_cents"`

	// Kebijakan cancel/no-show (nil = pakai default club)
	GymClassesCancellationDeadlineHours int    `gorm:"column:gym_classes_cancellation_deadline_hours;type:int;not null;default:4" json:"gym_classes_cancellation_deadline_hours"`
	GymClassesLateCancellationFeeCents  *int64 `gorm:"column:gym_classes_late_cancellation_fee_cents;type:bigint" json:"gym_classes_late_cancellation_fee_cents,omitempty"`
	GymClassesNoShowFeeCents            *int64 `gorm:"column:gym_classes_no_show_fee_cents;type:bigint" json:"gym_classes_no_show_fee_cents,omitempty"`

	GymClassesCreatedAt time.Time      `gorm:"column:gym_classes_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"gym_classes_created_at"`
	GymClassesUpdatedAt time.Time      `gorm:"column:gym_classes_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"gym_classes_updated_at"`
	GymClassesDeletedAt gorm.DeletedAt `gorm:"column:gym_classes_deleted_at;index" json:"gym_classes_deleted_at,omitempty"`
}

func (GymClassModel) TableName() string {
	return "gym_classes"
}
