// file: internals/features/classes/bookings/service/booking_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
	memberModel "fitclub_backend/internals/features/members/members/model"
	paymentModel "fitclub_backend/internals/features/payment/payments/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* ======================================================
   BookingService: orchestrator state machine booking.
   Satu operasi = satu unit of work = satu transaksi yang
   discope ke row session (FOR UPDATE + guard lock_version).
   Konflik versi di-retry transparan sekali, lalu surface
   sebagai ErrConcurrentModification.
====================================================== */

// Jenis event notifikasi (fire-and-forget, tidak pernah di-await)
const (
	NotifBookingConfirmed  = "booking_confirmed"
	NotifBookingWaitlisted = "booking_waitlisted"
	NotifWaitlistPromoted  = "waitlist_promoted"
	NotifCancellationFee   = "cancellation_fee_applied"
	NotifPromotionSkipped  = "waitlist_promotion_skipped"
)

type Notifier interface {
	Notify(memberID uuid.UUID, kind, title, body string)
}

type BookingService struct {
	DB           *gorm.DB
	Resolver     *PaymentSourceResolver
	Gate         *EligibilityGate
	Entitlements EntitlementMutator
	Packs        ClassPackMutator
	Charger      PayPerEntryCharger
	Notifier     Notifier

	now func() time.Time
}

func NewBookingService(
	db *gorm.DB,
	resolver *PaymentSourceResolver,
	gate *EligibilityGate,
	entitlements EntitlementMutator,
	packs ClassPackMutator,
	charger PayPerEntryCharger,
	notifier Notifier,
) *BookingService {
	return &BookingService{
		DB:           db,
		Resolver:     resolver,
		Gate:         gate,
		Entitlements: entitlements,
		Packs:        packs,
		Charger:      charger,
		Notifier:     notifier,
		now:          time.Now,
	}
}

// isRetriableConflict: konflik lock_version kita sendiri, atau
// deadlock/serialization abort yang dideteksi Postgres — transaksinya
// sudah di-rollback utuh, jadi aman diulang dari awal.
func isRetriableConflict(err error) bool {
	if errors.Is(err, ErrConcurrentModification) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40P01" || pgErr.Code == "40001"
	}
	return false
}

// retryOnce menjalankan ulang operasi satu kali kalau kena konflik
// yang retriable (kebijakan konkurensi: retry 1x, lalu surface 409).
func retryOnce(op func() (*bookingModel.BookingModel, error)) (*bookingModel.BookingModel, error) {
	b, err := op()
	if !isRetriableConflict(err) {
		return b, err
	}
	log.Println("[BookingService] retriable conflict, retrying once")
	b, err = op()
	if err != nil && isRetriableConflict(err) {
		return b, ErrConcurrentModification
	}
	return b, err
}

/* ======================================================
   CreateBooking
====================================================== */

func (s *BookingService) CreateBooking(
	ctx context.Context,
	sessionID, memberID uuid.UUID,
	preference *bookingModel.PaymentSource,
) (*bookingModel.BookingModel, error) {
	return retryOnce(func() (*bookingModel.BookingModel, error) {
		return s.createBookingOnce(ctx, sessionID, memberID, preference)
	})
}

func (s *BookingService) createBookingOnce(
	ctx context.Context,
	sessionID, memberID uuid.UUID,
	preference *bookingModel.PaymentSource,
) (*bookingModel.BookingModel, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	sess, err := lockSession(tx, sessionID)
	if err != nil {
		return nil, err
	}
	class, club, err := s.loadClassClub(tx, sess)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := checkBookable(sess, club, now); err != nil {
		return nil, err
	}

	// Satu booking aktif per (session, member)
	var active int64
	if err := tx.Model(&bookingModel.BookingModel{}).
		Where("bookings_session_id = ? AND bookings_member_id = ?", sessionID, memberID).
		Where("bookings_status IN ?", bookingModel.ActiveStatuses).
		Count(&active).Error; err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, ErrAlreadyBooked
	}

	member, err := s.loadMember(tx, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.Gate.Check(ctx, class.GymClassesLocationID, member.MembersGender, sess.ClassSessionsStartAt); err != nil {
		return nil, err
	}

	opt, err := s.Resolver.Resolve(ctx, memberID, class, club, preference)
	if err != nil {
		return nil, err
	}

	b := &bookingModel.BookingModel{
		BookingsID:            uuid.New(),
		BookingsClubID:        sess.ClassSessionsClubID,
		BookingsSessionID:     sessionID,
		BookingsMemberID:      memberID,
		BookingsPaymentSource: opt.Source,
		BookingsBookedAt:      now,
	}

	// Selama waitlist non-empty, slot bebas milik antrian — booking
	// baru ikut mengantre walau kapasitas masih tersisa (misal
	// auto-promote mati, atau semua kandidat promosi di-skip).
	reserved := false
	if !waitlistHasPriority(sess) {
		reserved, err = tryReserveSpot(tx, sess)
		if err != nil {
			return nil, err
		}
	}

	if !reserved {
		// Penuh / antrian jalan duluan → masuk waitlist; belum ada
		// charge/deduksi sampai promoted
		pos, err := enqueueWaitlist(tx, sess)
		if err != nil {
			return nil, err
		}
		b.BookingsStatus = bookingModel.BookingWaitlisted
		b.BookingsWaitlistPosition = &pos
		if err := tx.Create(b).Error; err != nil {
			return nil, err
		}
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
		committed = true
		s.Notifier.Notify(memberID, NotifBookingWaitlisted, "Masuk waitlist",
			fmt.Sprintf("Session penuh, posisi waitlist kamu #%d", pos))
		return b, nil
	}

	b.BookingsStatus = bookingModel.BookingConfirmed
	compensate, err := s.applyPaymentOption(ctx, b, opt)
	if err != nil {
		return nil, err
	}
	if err := tx.Create(b).Error; err != nil {
		compensate()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		// Kapasitas batal ter-publish; saldo/kuota yang terlanjur
		// dikonsumsi dikembalikan (compensating action)
		compensate()
		return nil, err
	}
	committed = true

	s.Notifier.Notify(memberID, NotifBookingConfirmed, "Booking confirmed",
		fmt.Sprintf("Booking kamu untuk %s terkonfirmasi", class.GymClassesName))
	return b, nil
}

// checkBookable: status session & window booking.
func checkBookable(sess *scheduleModel.ClassSessionModel, club *scheduleModel.ClubModel, now time.Time) error {
	if sess.ClassSessionsStatus != scheduleModel.ClassSessionScheduled {
		return ErrSessionNotBookable
	}
	if !now.Before(sess.ClassSessionsStartAt) {
		return ErrSessionNotBookable
	}
	if club.ClubsBookingWindowDays > 0 {
		opensAt := sess.ClassSessionsStartAt.AddDate(0, 0, -club.ClubsBookingWindowDays)
		if now.Before(opensAt) {
			return ErrSessionNotBookable
		}
	}
	return nil
}

/* ======================================================
   CheckIn
====================================================== */

func (s *BookingService) CheckIn(ctx context.Context, bookingID uuid.UUID, memberID *uuid.UUID) (*bookingModel.BookingModel, error) {
	return retryOnce(func() (*bookingModel.BookingModel, error) {
		return s.checkInOnce(ctx, bookingID, memberID)
	})
}

func (s *BookingService) checkInOnce(ctx context.Context, bookingID uuid.UUID, memberID *uuid.UUID) (*bookingModel.BookingModel, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	// Urutan lock global: session dulu, baru booking (lihat
	// bookingSessionID) — karena itu session id dibaca tanpa lock.
	sessionID, err := bookingSessionID(tx, bookingID)
	if err != nil {
		return nil, err
	}
	sess, err := lockSession(tx, sessionID)
	if err != nil {
		return nil, err
	}
	b, err := lockBooking(tx, bookingID, memberID)
	if err != nil {
		return nil, err
	}
	if err := ensureTransition(b.BookingsStatus, bookingModel.BookingCheckedIn); err != nil {
		return nil, err
	}
	class, _, err := s.loadClassClub(tx, sess)
	if err != nil {
		return nil, err
	}

	// Gate diulang: prayer-time bisa melarang check-in walau
	// booking-nya dulu diizinkan
	member, err := s.loadMember(tx, b.BookingsMemberID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := s.Gate.Check(ctx, class.GymClassesLocationID, member.MembersGender, now); err != nil {
		return nil, err
	}

	if err := bumpCheckedInCount(tx, sess); err != nil {
		return nil, err
	}

	b.BookingsStatus = bookingModel.BookingCheckedIn
	b.BookingsCheckedInAt = &now
	if err := tx.Model(b).Updates(map[string]interface{}{
		"bookings_status":        b.BookingsStatus,
		"bookings_checked_in_at": now,
	}).Error; err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

/* ======================================================
   Cancel
====================================================== */

func (s *BookingService) Cancel(ctx context.Context, bookingID uuid.UUID, memberID *uuid.UUID, reason *string) (*bookingModel.BookingModel, error) {
	return retryOnce(func() (*bookingModel.BookingModel, error) {
		return s.cancelOnce(ctx, bookingID, memberID, reason)
	})
}

func (s *BookingService) cancelOnce(ctx context.Context, bookingID uuid.UUID, memberID *uuid.UUID, reason *string) (*bookingModel.BookingModel, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	sessionID, err := bookingSessionID(tx, bookingID)
	if err != nil {
		return nil, err
	}
	sess, err := lockSession(tx, sessionID)
	if err != nil {
		return nil, err
	}
	b, err := lockBooking(tx, bookingID, memberID)
	if err != nil {
		return nil, err
	}
	// Cancel dari cancelled/no_show/dll → InvalidTransition. Status
	// dibaca SETELAH lock (bisa berubah sejak read tanpa lock di atas,
	// misal baru dipromosikan). Ini sekaligus menjamin refund
	// idempotent (tidak ada refund kedua).
	if err := ensureTransition(b.BookingsStatus, bookingModel.BookingCancelled); err != nil {
		return nil, err
	}
	class, club, err := s.loadClassClub(tx, sess)
	if err != nil {
		return nil, err
	}

	now := s.now()
	wasWaitlisted := b.BookingsStatus == bookingModel.BookingWaitlisted
	var feeApplied int64
	compensate := func() {}

	if wasWaitlisted {
		// Keluar dari antrian: renumber posisi di belakangnya, tanpa fee
		if b.BookingsWaitlistPosition != nil {
			if err := removeFromWaitlist(tx, sess, *b.BookingsWaitlistPosition); err != nil {
				return nil, err
			}
		}
	} else {
		policy := BuildFeePolicy(club, class)
		out := policy.EvaluateCancellation(now, sess.ClassSessionsStartAt)

		if err := releaseSpot(tx, sess); err != nil {
			return nil, err
		}
		feeApplied = out.FeeCents

		// Refund credit kalau on-time (atau club mengizinkan saat late)
		if b.BookingsClassDeducted && out.RefundCredit {
			comp, err := s.refundCredit(ctx, b)
			if err != nil {
				return nil, err
			}
			compensate = comp
			b.BookingsClassDeducted = false
		}
	}

	b.BookingsStatus = bookingModel.BookingCancelled
	b.BookingsCancelledAt = &now
	b.BookingsCancellationReason = reason
	updates := map[string]interface{}{
		"bookings_status":              b.BookingsStatus,
		"bookings_cancelled_at":        now,
		"bookings_waitlist_position":   gorm.Expr("NULL"),
		"bookings_class_deducted":      b.BookingsClassDeducted,
		"bookings_cancellation_reason": reason,
	}
	if feeApplied > 0 {
		b.BookingsFeeCents = &feeApplied
		updates["bookings_fee_cents"] = feeApplied
	}
	if err := tx.Model(b).Updates(updates).Error; err != nil {
		compensate()
		return nil, err
	}
	b.BookingsWaitlistPosition = nil

	// Promotion berjalan DI DALAM transaksi cancel: slot yang baru
	// bebas tidak pernah terlihat kosong oleh booking request lain
	// selama waitlist non-empty (waitlist priority tie-break).
	var promoted []promotionResult
	if !wasWaitlisted && club.ClubsWaitlistAutoPromote && sess.ClassSessionsWaitlistCount > 0 {
		promoted, err = s.promoteLocked(ctx, tx, sess, class, club, now)
		if err != nil {
			compensate()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		compensate()
		for _, p := range promoted {
			p.compensate()
		}
		return nil, err
	}
	committed = true

	if feeApplied > 0 {
		s.Notifier.Notify(b.BookingsMemberID, NotifCancellationFee, "Late cancellation fee",
			fmt.Sprintf("Fee pembatalan terlambat %d dikenakan untuk %s", feeApplied, class.GymClassesName))
	}
	for _, p := range promoted {
		p.notify(s.Notifier, class.GymClassesName)
	}
	return b, nil
}

/* ======================================================
   MarkNoShow
====================================================== */

// MarkNoShow: hanya dari CONFIRMED, hanya setelah session berakhir
// (atau adminOverride). Slot TIDAK dilepas dan waitlist TIDAK
// dipromosikan — member tetap ditagih seperti reservasi berbayar.
func (s *BookingService) MarkNoShow(ctx context.Context, bookingID uuid.UUID, adminOverride bool) (*bookingModel.BookingModel, error) {
	return retryOnce(func() (*bookingModel.BookingModel, error) {
		return s.markNoShowOnce(ctx, bookingID, adminOverride)
	})
}

func (s *BookingService) markNoShowOnce(ctx context.Context, bookingID uuid.UUID, adminOverride bool) (*bookingModel.BookingModel, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	sessionID, err := bookingSessionID(tx, bookingID)
	if err != nil {
		return nil, err
	}
	sess, err := lockSession(tx, sessionID)
	if err != nil {
		return nil, err
	}
	b, err := lockBooking(tx, bookingID, nil)
	if err != nil {
		return nil, err
	}
	if err := ensureTransition(b.BookingsStatus, bookingModel.BookingNoShow); err != nil {
		return nil, err
	}
	class, club, err := s.loadClassClub(tx, sess)
	if err != nil {
		return nil, err
	}

	policy := BuildFeePolicy(club, class)
	out, err := policy.EvaluateNoShow(s.now(), sess.ClassSessionsEndAt, adminOverride)
	if err != nil {
		return nil, err
	}

	b.BookingsStatus = bookingModel.BookingNoShow
	updates := map[string]interface{}{
		"bookings_status": b.BookingsStatus,
	}
	if out.FeeCents > 0 {
		b.BookingsFeeCents = &out.FeeCents
		updates["bookings_fee_cents"] = out.FeeCents
	}
	if err := tx.Model(b).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	committed = true

	if out.FeeCents > 0 {
		s.Notifier.Notify(b.BookingsMemberID, NotifCancellationFee, "No-show fee",
			fmt.Sprintf("Fee no-show %d dikenakan untuk %s", out.FeeCents, class.GymClassesName))
	}
	return b, nil
}

/* ======================================================
   Complete
====================================================== */

// Complete: CHECKED_IN → COMPLETED, pure bookkeeping tanpa fee.
func (s *BookingService) Complete(ctx context.Context, bookingID uuid.UUID) (*bookingModel.BookingModel, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	b, err := lockBooking(tx, bookingID, nil)
	if err != nil {
		return nil, err
	}
	if err := ensureTransition(b.BookingsStatus, bookingModel.BookingCompleted); err != nil {
		return nil, err
	}

	b.BookingsStatus = bookingModel.BookingCompleted
	if err := tx.Model(b).UpdateColumn("bookings_status", b.BookingsStatus).Error; err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

/* ======================================================
   Waitlist promotion (di dalam transaksi cancel)
====================================================== */

type promotionResult struct {
	memberID   uuid.UUID
	skipped    bool
	compensate func()
}

func (p promotionResult) notify(n Notifier, className string) {
	if p.skipped {
		n.Notify(p.memberID, NotifPromotionSkipped, "Promosi waitlist dilewati",
			fmt.Sprintf("Kamu belum bisa dipromosikan untuk %s, posisi waitlist tetap", className))
		return
	}
	n.Notify(p.memberID, NotifWaitlistPromoted, "Naik dari waitlist",
		fmt.Sprintf("Slot kosong! Booking kamu untuk %s sekarang confirmed", className))
}

// promoteLocked mencoba mengisi slot kosong dari waitlist (FIFO).
// Kandidat yang gagal gate/payment di-skip (tetap waitlisted) dan
// kandidat berikutnya dicoba — kegagalan satu kandidat tidak pernah
// membatalkan cancel yang men-trigger promosi ini.
func (s *BookingService) promoteLocked(
	ctx context.Context,
	tx *gorm.DB,
	sess *scheduleModel.ClassSessionModel,
	class *scheduleModel.GymClassModel,
	club *scheduleModel.ClubModel,
	now time.Time,
) ([]promotionResult, error) {
	candidates, err := waitlistCandidates(tx, sess.ClassSessionsID)
	if err != nil {
		return nil, err
	}

	var results []promotionResult
	for i := range candidates {
		if sess.AvailableSpots() == 0 {
			break
		}
		cand := &candidates[i]

		member, err := s.loadMember(tx, cand.BookingsMemberID)
		if err != nil {
			return results, err
		}

		// Kondisi bisa berubah sejak enqueue (class pack expired dsb.)
		// → gate & resolver diulang per kandidat
		if err := s.Gate.Check(ctx, class.GymClassesLocationID, member.MembersGender, sess.ClassSessionsStartAt); err != nil {
			if _, ok := IsNotEligible(err); ok {
				log.Printf("[PromoteNext] skip booking=%s: %v", cand.BookingsID, err)
				results = append(results, promotionResult{memberID: cand.BookingsMemberID, skipped: true, compensate: func() {}})
				continue
			}
			return results, err
		}

		opt, err := s.Resolver.Resolve(ctx, cand.BookingsMemberID, class, club, nil)
		if err != nil {
			if errors.Is(err, ErrNoPaymentSource) || errors.Is(err, ErrPaymentSourceUnavailable) {
				log.Printf("[PromoteNext] skip booking=%s: %v", cand.BookingsID, err)
				results = append(results, promotionResult{memberID: cand.BookingsMemberID, skipped: true, compensate: func() {}})
				continue
			}
			return results, err
		}

		reserved, err := tryReserveSpot(tx, sess)
		if err != nil {
			return results, err
		}
		if !reserved {
			break
		}

		cand.BookingsStatus = bookingModel.BookingConfirmed
		cand.BookingsPaymentSource = opt.Source
		compensate, err := s.applyPaymentOption(ctx, cand, opt)
		if err != nil {
			// Charge/deduksi gagal → lepas lagi slot-nya, skip kandidat
			if relErr := releaseSpot(tx, sess); relErr != nil {
				return results, relErr
			}
			log.Printf("[PromoteNext] skip booking=%s: payment apply failed: %v", cand.BookingsID, err)
			cand.BookingsStatus = bookingModel.BookingWaitlisted
			results = append(results, promotionResult{memberID: cand.BookingsMemberID, skipped: true, compensate: func() {}})
			continue
		}

		pos := 0
		if cand.BookingsWaitlistPosition != nil {
			pos = *cand.BookingsWaitlistPosition
		}
		updates := map[string]interface{}{
			"bookings_status":                cand.BookingsStatus,
			"bookings_payment_source":        cand.BookingsPaymentSource,
			"bookings_waitlist_position":     gorm.Expr("NULL"),
			"bookings_class_deducted":        cand.BookingsClassDeducted,
			"bookings_subscription_id":       cand.BookingsSubscriptionID,
			"bookings_class_pack_balance_id": cand.BookingsClassPackBalanceID,
			"bookings_payment_snapshot":      cand.BookingsPaymentSnapshot,
		}
		if cand.BookingsPaidGrossCents != nil {
			updates["bookings_paid_net_cents"] = cand.BookingsPaidNetCents
			updates["bookings_paid_tax_cents"] = cand.BookingsPaidTaxCents
			updates["bookings_paid_gross_cents"] = cand.BookingsPaidGrossCents
			updates["bookings_paid_currency"] = cand.BookingsPaidCurrency
		}
		if err := tx.Model(cand).Updates(updates).Error; err != nil {
			compensate()
			return results, err
		}
		cand.BookingsWaitlistPosition = nil

		// Renumber sisa antrian + decrement counter (dense 1..N)
		if err := removeFromWaitlist(tx, sess, pos); err != nil {
			compensate()
			return results, err
		}
		// Posisi in-memory kandidat berikutnya ikut bergeser
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].BookingsWaitlistPosition != nil && *candidates[j].BookingsWaitlistPosition > pos {
				np := *candidates[j].BookingsWaitlistPosition - 1
				candidates[j].BookingsWaitlistPosition = &np
			}
		}

		results = append(results, promotionResult{memberID: cand.BookingsMemberID, compensate: compensate})
	}

	return results, nil
}

/* ======================================================
   Shared internals
====================================================== */

// bookingSessionID membaca session id sebuah booking TANPA lock.
// Urutan lock global di seluruh service: session row dulu, baru
// booking row — promoteLocked memegang session lalu mengunci row
// waitlisted, jadi urutan sebaliknya di operasi lain bisa deadlock.
func bookingSessionID(tx *gorm.DB, bookingID uuid.UUID) (uuid.UUID, error) {
	var b bookingModel.BookingModel
	if err := tx.Select("bookings_session_id").
		Where("bookings_id = ?", bookingID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrBookingNotFound
		}
		return uuid.Nil, err
	}
	return b.BookingsSessionID, nil
}

func lockBooking(tx *gorm.DB, bookingID uuid.UUID, memberID *uuid.UUID) (*bookingModel.BookingModel, error) {
	q := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("bookings_id = ?", bookingID)
	if memberID != nil {
		q = q.Where("bookings_member_id = ?", *memberID)
	}
	var b bookingModel.BookingModel
	if err := q.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *BookingService) loadClassClub(tx *gorm.DB, sess *scheduleModel.ClassSessionModel) (*scheduleModel.GymClassModel, *scheduleModel.ClubModel, error) {
	var class scheduleModel.GymClassModel
	if err := tx.Where("gym_classes_id = ?", sess.ClassSessionsClassID).First(&class).Error; err != nil {
		return nil, nil, err
	}
	var club scheduleModel.ClubModel
	if err := tx.Where("clubs_id = ?", sess.ClassSessionsClubID).First(&club).Error; err != nil {
		return nil, nil, err
	}
	return &class, &club, nil
}

func (s *BookingService) loadMember(tx *gorm.DB, memberID uuid.UUID) (*memberModel.MemberModel, error) {
	var m memberModel.MemberModel
	if err := tx.Where("members_id = ?", memberID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// applyPaymentOption mengeksekusi konsekuensi payment source yang
// terpilih pada booking CONFIRMED: konsumsi kuota subscription /
// saldo class pack (masing-masing transaksi + lock sendiri), atau
// charge pay-per-entry. Mengembalikan compensating action untuk
// dipanggil kalau transaksi session gagal commit.
func (s *BookingService) applyPaymentOption(ctx context.Context, b *bookingModel.BookingModel, opt *PaymentOption) (func(), error) {
	noop := func() {}

	switch opt.Source {
	case bookingModel.SourceMembership:
		if err := s.Entitlements.ConsumeClass(ctx, *opt.SubscriptionID); err != nil {
			return noop, err
		}
		subID := *opt.SubscriptionID
		b.BookingsSubscriptionID = &subID
		b.BookingsClassDeducted = true
		s.attachSnapshot(b, opt)
		return func() {
			if err := s.Entitlements.RestoreClass(context.Background(), subID); err != nil {
				log.Printf("[BookingService] compensate restore subscription %s failed: %v", subID, err)
			}
		}, nil

	case bookingModel.SourceClassPack:
		if err := s.Packs.Decrement(ctx, *opt.BalanceID); err != nil {
			return noop, err
		}
		balID := *opt.BalanceID
		b.BookingsClassPackBalanceID = &balID
		b.BookingsClassDeducted = true
		s.attachSnapshot(b, opt)
		return func() {
			if err := s.Packs.Increment(context.Background(), balID); err != nil {
				log.Printf("[BookingService] compensate increment balance %s failed: %v", balID, err)
			}
		}, nil

	case bookingModel.SourcePayPerEntry:
		orderID, err := s.Charger.ChargePayPerEntry(ctx, b.BookingsMemberID, b.BookingsID, *opt.Price)
		if err != nil {
			return noop, err
		}
		net := opt.Price.Net.AmountCents
		tax := opt.Price.Tax.AmountCents
		gross := opt.Price.Gross.AmountCents
		cur := opt.Price.Gross.Currency
		b.BookingsPaidNetCents = &net
		b.BookingsPaidTaxCents = &tax
		b.BookingsPaidGrossCents = &gross
		b.BookingsPaidCurrency = &cur
		b.BookingsClassDeducted = false
		s.attachSnapshot(b, opt, orderID)
		// Payment row + Snap token sudah terlanjur dibuat; kalau
		// transaksi booking gagal commit, charge-nya di-void supaya
		// tidak ada tagihan tanpa booking
		return func() {
			if err := s.Charger.VoidPayPerEntry(context.Background(), orderID); err != nil {
				log.Printf("[BookingService] compensate void payment %s failed: %v", orderID, err)
			}
		}, nil
	}

	return noop, ErrPaymentSourceUnavailable
}

// refundCredit mengembalikan kuota/saldo yang sudah dikonsumsi booking.
// Return-nya compensating action (re-consume) untuk kegagalan commit.
func (s *BookingService) refundCredit(ctx context.Context, b *bookingModel.BookingModel) (func(), error) {
	noop := func() {}
	switch b.BookingsPaymentSource {
	case bookingModel.SourceMembership:
		if b.BookingsSubscriptionID == nil {
			return noop, nil
		}
		subID := *b.BookingsSubscriptionID
		if err := s.Entitlements.RestoreClass(ctx, subID); err != nil {
			return noop, err
		}
		return func() {
			if err := s.Entitlements.ConsumeClass(context.Background(), subID); err != nil {
				log.Printf("[BookingService] compensate re-consume subscription %s failed: %v", subID, err)
			}
		}, nil
	case bookingModel.SourceClassPack:
		if b.BookingsClassPackBalanceID == nil {
			return noop, nil
		}
		balID := *b.BookingsClassPackBalanceID
		if err := s.Packs.Increment(ctx, balID); err != nil {
			return noop, err
		}
		return func() {
			if err := s.Packs.Decrement(context.Background(), balID); err != nil {
				log.Printf("[BookingService] compensate re-decrement balance %s failed: %v", balID, err)
			}
		}, nil
	}
	return noop, nil
}

type paymentSnapshot struct {
	Source         bookingModel.PaymentSource   `json:"source"`
	SubscriptionID *uuid.UUID                   `json:"subscription_id,omitempty"`
	BalanceID      *uuid.UUID                   `json:"balance_id,omitempty"`
	Price          *paymentModel.PriceBreakdown `json:"price,omitempty"`
	OrderID        string                       `json:"order_id,omitempty"`
}

func (s *BookingService) attachSnapshot(b *bookingModel.BookingModel, opt *PaymentOption, orderID ...string) {
	snap := paymentSnapshot{
		Source:         opt.Source,
		SubscriptionID: opt.SubscriptionID,
		BalanceID:      opt.BalanceID,
		Price:          opt.Price,
	}
	if len(orderID) > 0 {
		snap.OrderID = orderID[0]
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[BookingService] marshal payment snapshot: %v", err)
		return
	}
	b.BookingsPaymentSnapshot = datatypes.JSON(raw)
}
