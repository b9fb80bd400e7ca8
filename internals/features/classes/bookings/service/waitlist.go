// file: internals/features/classes/bookings/service/waitlist.go
package service

import (
	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* ======================================================
   WaitlistManager.
   Posisi disimpan sebagai integer dense 1..waitlist_count per
   session (bukan linked-list). Renumbering terjadi di transaksi
   yang sama dengan enqueue/promote/remove supaya invariant
   "tanpa gap" bisa diverifikasi dengan inspeksi.
====================================================== */

// waitlistHasPriority: selama antrian non-empty, slot bebas milik
// antrian. Booking baru tidak boleh menyalip — termasuk saat
// auto-promote club mati atau semua kandidat promosi di-skip.
func waitlistHasPriority(sess *scheduleModel.ClassSessionModel) bool {
	return sess.ClassSessionsWaitlistCount > 0
}

// enqueueWaitlist menaruh booking di ekor waitlist. Mengembalikan
// posisi yang dialokasikan (waitlist_count lama + 1).
func enqueueWaitlist(tx *gorm.DB, sess *scheduleModel.ClassSessionModel) (int, error) {
	pos := sess.ClassSessionsWaitlistCount + 1
	if err := bumpWaitlistCount(tx, sess, 1); err != nil {
		return 0, err
	}
	return pos, nil
}

// removeFromWaitlist mengeluarkan satu entry waitlisted: renumber
// posisi di belakangnya lalu decrement counter.
func removeFromWaitlist(tx *gorm.DB, sess *scheduleModel.ClassSessionModel, removedPosition int) error {
	if err := renumberBehind(tx, sess.ClassSessionsID, removedPosition); err != nil {
		return err
	}
	return bumpWaitlistCount(tx, sess, -1)
}

// renumberBehind menggeser semua posisi > pos turun satu (dense 1..N).
func renumberBehind(tx *gorm.DB, sessionID uuid.UUID, pos int) error {
	return tx.Model(&bookingModel.BookingModel{}).
		Where("bookings_session_id = ?", sessionID).
		Where("bookings_status = ?", bookingModel.BookingWaitlisted).
		Where("bookings_waitlist_position > ?", pos).
		UpdateColumn("bookings_waitlist_position", gorm.Expr("bookings_waitlist_position - 1")).
		Error
}

// waitlistCandidates memuat semua booking waitlisted session ini,
// terurut posisi (FIFO), dengan row lock.
func waitlistCandidates(tx *gorm.DB, sessionID uuid.UUID) ([]bookingModel.BookingModel, error) {
	var rows []bookingModel.BookingModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("bookings_session_id = ?", sessionID).
		Where("bookings_status = ?", bookingModel.BookingWaitlisted).
		Order("bookings_waitlist_position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
