// file: internals/features/classes/class_schedules/model/club_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: clubs
   Pengaturan default per club (fee, pajak, window booking)
====================================================== */

type ClubModel struct {
	ClubsID   uuid.UUID `gorm:"column:clubs_id;type:uuid;default:gen_random_uuid();primaryKey" json:"clubs_id"`
	ClubsName string    `gorm:"column:clubs_name;type:varchar(120);not null" json:"clubs_name"`

	// Mata uang & pajak (dipakai semua perhitungan harga)
	ClubsCurrency       string  `gorm:"column:clubs_currency;type:varchar(3);not null;default:'SAR'" json:"clubs_currency"`
	ClubsTaxRatePercent float64 `gorm:"column:clubs_tax_rate_percent;type:numeric(5,2);not null;default:15" json:"clubs_tax_rate_percent"`

	// Default fee (dipakai kalau kelas tidak punya override)
	ClubsDefaultLateCancellationFeeCents int64 `gorm:"column:clubs_default_late_cancellation_fee_cents;type:bigint;not null;default:0" json:"clubs_default_late_cancellation_fee_cents"`
	ClubsDefaultNoShowFeeCents           int64 `gorm:"column:clubs_default_no_show_fee_cents;type:bigint;not null;default:0" json:"clubs_default_no_show_fee_cents"`

	// Kebijakan refund saat late-cancel: default forfeit (false)
	ClubsRefundCreditOnLateCancel bool `gorm:"column:clubs_refund_credit_on_late_cancel;not null;default:false" json:"clubs_refund_credit_on_late_cancel"`

	// Waitlist & window booking
	ClubsWaitlistAutoPromote bool `gorm:"column:clubs_waitlist_auto_promote;not null;default:true" json:"clubs_waitlist_auto_promote"`
	ClubsBookingWindowDays   int  `gorm:"column:clubs_booking_window_days;type:int;not null;default:14" json:"clubs_booking_window_days"`

	// Timezone club (dipakai aturan akses per jam)
	ClubsTimezone string `gorm:"column:clubs_timezone;type:varchar(64);not null;default:'Asia/Riyadh'" json:"clubs_timezone"`

	ClubsCreatedAt time.Time      `gorm:"column:clubs_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"clubs_created_at"`
	ClubsUpdatedAt time.Time      `gorm:"column:clubs_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"clubs_updated_at"`
	ClubsDeletedAt gorm.DeletedAt `gorm:"column:clubs_deleted_at;index" json:"clubs_deleted_at,omitempty"`
}

func (ClubModel) TableName() string {
	return "clubs"
}
