// file: internals/features/classes/bookings/service/errors.go
package service

import (
	"errors"
	"fmt"
)

/* ======================================================
   Error taxonomy booking engine.
   Semua pelanggaran aturan domain dikembalikan sebagai typed
   error ke caller (controller merender reason spesifik) —
   hanya kegagalan infrastruktur yang lolos sebagai error biasa.
====================================================== */

var (
	// Session bukan scheduled, atau di luar window booking
	ErrSessionNotBookable = errors.New("session not bookable")

	// Sudah ada booking aktif (confirmed/waitlisted/checked_in) untuk pair ini
	ErrAlreadyBooked = errors.New("already booked")

	// Tidak ada payment source yang bisa dipakai sama sekali
	ErrNoPaymentSource = errors.New("no payment source available")

	// Preference caller tidak eligible
	ErrPaymentSourceUnavailable = errors.New("payment source unavailable")

	// Transisi status tidak legal dari state sekarang
	ErrInvalidTransition = errors.New("invalid booking state transition")

	// Versi session berubah di tengah operasi; sudah di-retry sekali
	ErrConcurrentModification = errors.New("concurrent modification")

	// Tidak boleh no-show sebelum session berakhir
	ErrSessionNotEnded = errors.New("session has not ended yet")

	ErrBookingNotFound = errors.New("booking not found")
	ErrSessionNotFound = errors.New("session not found")
)

/* ======================================================
   NotEligibleError: ditolak EligibilityGate, bawa reason code
====================================================== */

const (
	ReasonGenderPolicy       = "gender_policy"
	ReasonPrayerTime         = "prayer_time"
	ReasonSubscriptionStatus = "subscription_status"
)

type NotEligibleError struct {
	Reason string
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("not eligible: %s", e.Reason)
}

// IsNotEligible: helper untuk controller
func IsNotEligible(err error) (*NotEligibleError, bool) {
	var ne *NotEligibleError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}
