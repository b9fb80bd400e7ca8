// file: internals/features/payment/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM: payment_status
====================================================== */

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
	PaymentExpired PaymentStatus = "expired"
)

/* ======================================================
   Model: payments
   Satu tagihan pay-per-entry per booking. order_id adalah
   kunci rekonsiliasi dengan gateway (format "ppe-<bookingID>").
====================================================== */

type PaymentModel struct {
	PaymentsID        uuid.UUID `gorm:"column:payments_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payments_id"`
	PaymentsMemberID  uuid.UUID `gorm:"column:payments_member_id;type:uuid;not null;index" json:"payments_member_id"`
	PaymentsBookingID uuid.UUID `gorm:"column:payments_booking_id;type:uuid;not null;index" json:"payments_booking_id"`

	PaymentsOrderID   string  `gorm:"column:payments_order_id;type:varchar(64);not null;uniqueIndex" json:"payments_order_id"`
	PaymentsSnapToken *string `gorm:"column:payments_snap_token;type:varchar(255)" json:"payments_snap_token,omitempty"`

	PaymentsNetCents   int64  `gorm:"column:payments_net_cents;type:bigint;not null" json:"payments_net_cents"`
	PaymentsTaxCents   int64  `gorm:"column:payments_tax_cents;type:bigint;not null" json:"payments_tax_cents"`
	PaymentsGrossCents int64  `gorm:"column:payments_gross_cents;type:bigint;not null" json:"payments_gross_cents"`
	PaymentsCurrency   string `gorm:"column:payments_currency;type:varchar(8);not null" json:"payments_currency"`

	// Nominal yang benar-benar ditagih di gateway: gross dibulatkan
	// ke atas ke unit mata uang utuh (gateway tidak menerima cents),
	// jadi bisa > payments_gross_cents untuk nominal pecahan
	PaymentsChargedCents int64 `gorm:"column:payments_charged_cents;type:bigint;not null;default:0" json:"payments_charged_cents"`

	PaymentsStatus PaymentStatus `gorm:"column:payments_status;type:payment_status;not null;default:'pending'" json:"payments_status"`

	// Payload notifikasi gateway terakhir, untuk audit
	PaymentsGatewaySnapshot datatypes.JSON `gorm:"column:payments_gateway_snapshot;type:jsonb" json:"payments_gateway_snapshot,omitempty"`

	PaymentsPaidAt *time.Time `gorm:"column:payments_paid_at;type:timestamptz" json:"payments_paid_at,omitempty"`

	PaymentsCreatedAt time.Time      `gorm:"column:payments_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"payments_created_at"`
	PaymentsUpdatedAt time.Time      `gorm:"column:payments_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"payments_updated_at"`
	PaymentsDeletedAt gorm.DeletedAt `gorm:"column:payments_deleted_at;index" json:"payments_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
