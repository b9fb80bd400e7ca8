// file: internals/features/classes/bookings/service/eligibility.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   EligibilityGate: adapter tipis di depan dua policy
   eksternal (gender-access & prayer-time). Dipanggil saat
   book DAN saat check-in / promote (kondisi bisa berubah).
====================================================== */

type GenderAccessChecker interface {
	IsEligible(ctx context.Context, locationID uuid.UUID, memberGender string, at time.Time) (bool, error)
}

type PrayerTimeChecker interface {
	IsBlocked(ctx context.Context, locationID uuid.UUID, at time.Time) (bool, error)
}

type EligibilityGate struct {
	Gender GenderAccessChecker
	Prayer PrayerTimeChecker
}

// Check mengembalikan *NotEligibleError dengan reason code saat ditolak.
func (g *EligibilityGate) Check(ctx context.Context, locationID uuid.UUID, memberGender string, at time.Time) error {
	ok, err := g.Gender.IsEligible(ctx, locationID, memberGender, at)
	if err != nil {
		return err
	}
	if !ok {
		return &NotEligibleError{Reason: ReasonGenderPolicy}
	}

	blocked, err := g.Prayer.IsBlocked(ctx, locationID, at)
	if err != nil {
		return err
	}
	if blocked {
		return &NotEligibleError{Reason: ReasonPrayerTime}
	}

	return nil
}
