// file: internals/features/classes/bookings/dto/booking_dto.go
package dto

import (
	"time"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"

	"github.com/google/uuid"
)

/* ======================================================
   Requests
====================================================== */

// POST /api/m/bookings
type CreateBookingRequest struct {
	SessionID uuid.UUID `json:"bookings_session_id" validate:"required"`

	// optional: membership | class_pack | pay_per_entry
	PaymentPreference *string `json:"bookings_payment_preference" validate:"omitempty,oneof=membership class_pack pay_per_entry"`
}

// POST /api/m/bookings/:id/cancel
type CancelBookingRequest struct {
	Reason *string `json:"bookings_cancellation_reason" validate:"omitempty,max=255"`
}

// POST /api/a/bookings/:id/no-show
type MarkNoShowRequest struct {
	// izinkan marking sebelum session berakhir (administrative override)
	Override bool `json:"override"`
}

/* ======================================================
   Query params (List)
====================================================== */

type ListBookingQuery struct {
	SessionID *uuid.UUID                  `query:"session_id"`
	Status    *bookingModel.BookingStatus `query:"status"`
}

/* ======================================================
   Responses
====================================================== */

type BookingResponse struct {
	BookingID uuid.UUID `json:"bookings_id"`
	SessionID uuid.UUID `json:"bookings_session_id"`
	MemberID  uuid.UUID `json:"bookings_member_id"`

	Status           bookingModel.BookingStatus `json:"bookings_status"`
	WaitlistPosition *int                       `json:"bookings_waitlist_position,omitempty"`

	PaymentSource bookingModel.PaymentSource `json:"bookings_payment_source"`
	ClassDeducted bool                       `json:"bookings_class_deducted"`

	PaidGrossCents *int64  `json:"bookings_paid_gross_cents,omitempty"`
	PaidCurrency   *string `json:"bookings_paid_currency,omitempty"`
	FeeCents       *int64  `json:"bookings_fee_cents,omitempty"`

	BookedAt           time.Time  `json:"bookings_booked_at"`
	CheckedInAt        *time.Time `json:"bookings_checked_in_at,omitempty"`
	CancelledAt        *time.Time `json:"bookings_cancelled_at,omitempty"`
	CancellationReason *string    `json:"bookings_cancellation_reason,omitempty"`
}

func FromBookingModel(m *bookingModel.BookingModel) BookingResponse {
	return BookingResponse{
		BookingID:          m.BookingsID,
		SessionID:          m.BookingsSessionID,
		MemberID:           m.BookingsMemberID,
		Status:             m.BookingsStatus,
		WaitlistPosition:   m.BookingsWaitlistPosition,
		PaymentSource:      m.BookingsPaymentSource,
		ClassDeducted:      m.BookingsClassDeducted,
		PaidGrossCents:     m.BookingsPaidGrossCents,
		PaidCurrency:       m.BookingsPaidCurrency,
		FeeCents:           m.BookingsFeeCents,
		BookedAt:           m.BookingsBookedAt,
		CheckedInAt:        m.BookingsCheckedInAt,
		CancelledAt:        m.BookingsCancelledAt,
		CancellationReason: m.BookingsCancellationReason,
	}
}

func FromBookingModels(ms []bookingModel.BookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromBookingModel(&ms[i]))
	}
	return out
}
