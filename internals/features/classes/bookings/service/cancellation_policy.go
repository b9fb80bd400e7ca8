// file: internals/features/classes/bookings/service/cancellation_policy.go
package service

import (
	"time"

	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
)

/* ======================================================
   CancellationPolicyEngine.
   Lateness = now > sessionStart - deadlineHours.
   Late  → fee dari kelas (fallback default club), credit hangus
           kecuali club set refund_credit_on_late_cancel.
   Tepat → tanpa fee, credit dikembalikan.
   No-show → fee terpisah, credit selalu hangus, hanya sah
           setelah session berakhir (kecuali override admin).
====================================================== */

type FeePolicy struct {
	DeadlineHours      int
	LateFeeCents       int64
	NoShowFeeCents     int64
	Currency           string
	RefundCreditOnLate bool
}

// BuildFeePolicy menggabungkan override kelas dengan default club.
func BuildFeePolicy(club *scheduleModel.ClubModel, class *scheduleModel.GymClassModel) FeePolicy {
	p := FeePolicy{
		DeadlineHours:      class.GymClassesCancellationDeadlineHours,
		LateFeeCents:       club.ClubsDefaultLateCancellationFeeCents,
		NoShowFeeCents:     club.ClubsDefaultNoShowFeeCents,
		Currency:           club.ClubsCurrency,
		RefundCreditOnLate: club.ClubsRefundCreditOnLateCancel,
	}
	if class.GymClassesLateCancellationFeeCents != nil {
		p.LateFeeCents = *class.GymClassesLateCancellationFeeCents
	}
	if class.GymClassesNoShowFeeCents != nil {
		p.NoShowFeeCents = *class.GymClassesNoShowFeeCents
	}
	return p
}

type CancellationOutcome struct {
	Late         bool
	FeeCents     int64
	RefundCredit bool
}

// IsLate: sudah lewat deadline cancel?
func (p FeePolicy) IsLate(now, sessionStart time.Time) bool {
	deadline := sessionStart.Add(-time.Duration(p.DeadlineHours) * time.Hour)
	return now.After(deadline)
}

// EvaluateCancellation menentukan fee & refund untuk cancel booking confirmed.
func (p FeePolicy) EvaluateCancellation(now, sessionStart time.Time) CancellationOutcome {
	if p.IsLate(now, sessionStart) {
		return CancellationOutcome{
			Late:         true,
			FeeCents:     p.LateFeeCents,
			RefundCredit: p.RefundCreditOnLate,
		}
	}
	return CancellationOutcome{Late: false, FeeCents: 0, RefundCredit: true}
}

// EvaluateNoShow: fee no-show, credit tidak pernah refund.
// adminOverride mengizinkan marking sebelum session berakhir.
func (p FeePolicy) EvaluateNoShow(now, sessionEnd time.Time, adminOverride bool) (CancellationOutcome, error) {
	if !adminOverride && !now.After(sessionEnd) {
		return CancellationOutcome{}, ErrSessionNotEnded
	}
	return CancellationOutcome{Late: true, FeeCents: p.NoShowFeeCents, RefundCredit: false}, nil
}
