// file: internals/features/classes/bookings/model/booking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   ENUM: booking_status
====================================================== */

type BookingStatus string

const (
	BookingWaitlisted BookingStatus = "waitlisted"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
)

// ActiveStatuses: status yang menghitung sebagai "masih memegang booking"
// untuk aturan satu booking aktif per (session, member).
var ActiveStatuses = []BookingStatus{BookingConfirmed, BookingWaitlisted, BookingCheckedIn}

/* ======================================================
   ENUM: booking_payment_source
====================================================== */

type PaymentSource string

const (
	SourceMembership  PaymentSource = "membership"
	SourceClassPack   PaymentSource = "class_pack"
	SourcePayPerEntry PaymentSource = "pay_per_entry"
)

func ValidPaymentSource(s PaymentSource) bool {
	switch s {
	case SourceMembership, SourceClassPack, SourcePayPerEntry:
		return true
	}
	return false
}

/* ======================================================
   Model: bookings
   Klaim member atas satu session. Tidak pernah dihapus fisik —
   cancel adalah status, bukan delete (audit history).
====================================================== */

type BookingModel struct {
	BookingsID     uuid.UUID `gorm:"column:bookings_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bookings_id"`
	BookingsClubID uuid.UUID `gorm:"column:bookings_club_id;type:uuid;not null;index" json:"bookings_club_id"`

	BookingsSessionID uuid.UUID `gorm:"column:bookings_session_id;type:uuid;not null;index" json:"bookings_session_id"`
	BookingsMemberID  uuid.UUID `gorm:"column:bookings_member_id;type:uuid;not null;index" json:"bookings_member_id"`

	// Sumber pembayaran yang dipakai (referensi, bukan ownership)
	BookingsSubscriptionID     *uuid.UUID `gorm:"column:bookings_subscription_id;type:uuid" json:"bookings_subscription_id,omitempty"`
	BookingsClassPackBalanceID *uuid.UUID `gorm:"column:bookings_class_pack_balance_id;type:uuid" json:"bookings_class_pack_balance_id,omitempty"`

	BookingsStatus BookingStatus `gorm:"column:bookings_status;type:booking_status;not null;default:'confirmed';index" json:"bookings_status"`

	// Dense 1..N per session selama waitlisted, nil selain itu
	BookingsWaitlistPosition *int `gorm:"column:bookings_waitlist_position;type:int" json:"bookings_waitlist_position,omitempty"`

	BookingsPaymentSource PaymentSource `gorm:"column:bookings_payment_source;type:booking_payment_source;not null" json:"bookings_payment_source"`

	// true kalau entitlement/credit sudah dikonsumsi untuk booking ini
	BookingsClassDeducted bool `gorm:"column:bookings_class_deducted;not null;default:false" json:"bookings_class_deducted"`

	// Harga pay-per-entry (nil untuk membership/class-pack)
	BookingsPaidNetCents   *int64  `gorm:"column:bookings_paid_net_cents;type:bigint" json:"bookings_paid_net_cents,omitempty"`
	BookingsPaidTaxCents   *int64  `gorm:"column:bookings_paid_tax_cents;type:bigint" json:"bookings_paid_tax_cents,omitempty"`
	BookingsPaidGrossCents *int64  `gorm:"column:bookings_paid_gross_cents;type:bigint" json:"bookings_paid_gross_cents,omitempty"`
	BookingsPaidCurrency   *string `gorm:"column:bookings_paid_currency;type:varchar(3)" json:"bookings_paid_currency,omitempty"`

	// Fee late-cancel / no-show yang dibebankan (0 = tidak ada)
	BookingsFeeCents *int64 `gorm:"column:bookings_fee_cents;type:bigint" json:"bookings_fee_cents,omitempty"`

	// Snapshot hasil resolve payment source (jsonb, untuk billing hilir)
	BookingsPaymentSnapshot datatypes.JSON `gorm:"column:bookings_payment_snapshot;type:jsonb" json:"bookings_payment_snapshot,omitempty"`

	BookingsBookedAt           time.Time  `gorm:"column:bookings_booked_at;type:timestamptz;not null;default:now()" json:"bookings_booked_at"`
	BookingsCheckedInAt        *time.Time `gorm:"column:bookings_checked_in_at;type:timestamptz" json:"bookings_checked_in_at,omitempty"`
	BookingsCancelledAt        *time.Time `gorm:"column:bookings_cancelled_at;type:timestamptz" json:"bookings_cancelled_at,omitempty"`
	BookingsCancellationReason *string    `gorm:"column:bookings_cancellation_reason;type:varchar(255)" json:"bookings_cancellation_reason,omitempty"`

	BookingsCreatedAt time.Time `gorm:"column:bookings_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"bookings_created_at"`
	BookingsUpdatedAt time.Time `gorm:"column:bookings_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"bookings_updated_at"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
