// file: internals/features/classes/bookings/service/capacity.go
package service

import (
	"errors"

	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* ======================================================
   SessionCapacityTracker.
   Semua mutasi counter session berjalan di dalam transaksi
   yang memegang row lock session + guard lock_version —
   compare-and-increment, bukan check-then-increment.
   RowsAffected == 0 dengan kapasitas tersedia = versi berubah
   di bawah kita → ErrConcurrentModification (caller retry 1x).
====================================================== */

// lockSession mengambil row session FOR UPDATE.
func lockSession(tx *gorm.DB, sessionID uuid.UUID) (*scheduleModel.ClassSessionModel, error) {
	var sess scheduleModel.ClassSessionModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("class_sessions_id = ?", sessionID).
		First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// tryReserveSpot: atomic check current_bookings < max_capacity + increment.
// false tanpa error = session penuh (tanpa side effect).
func tryReserveSpot(tx *gorm.DB, sess *scheduleModel.ClassSessionModel) (bool, error) {
	res := tx.Model(&scheduleModel.ClassSessionModel{}).
		Where("class_sessions_id = ?", sess.ClassSessionsID).
		Where("class_sessions_lock_version = ?", sess.ClassSessionsLockVersion).
		Where("class_sessions_current_bookings < class_sessions_max_capacity").
		Updates(map[string]interface{}{
			"class_sessions_current_bookings": gorm.Expr("class_sessions_current_bookings + 1"),
			"class_sessions_lock_version":     gorm.Expr("class_sessions_lock_version + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		if sess.ClassSessionsCurrentBookings >= sess.ClassSessionsMaxCapacity {
			return false, nil // penuh
		}
		return false, ErrConcurrentModification
	}
	sess.ClassSessionsCurrentBookings++
	sess.ClassSessionsLockVersion++
	return true, nil
}

// releaseSpot: decrement current_bookings, floor di 0.
func releaseSpot(tx *gorm.DB, sess *scheduleModel.ClassSessionModel) error {
	res := tx.Model(&scheduleModel.ClassSessionModel{}).
		Where("class_sessions_id = ?", sess.ClassSessionsID).
		Where("class_sessions_lock_version = ?", sess.ClassSessionsLockVersion).
		Where("class_sessions_current_bookings > 0").
		Updates(map[string]interface{}{
			"class_sessions_current_bookings": gorm.Expr("class_sessions_current_bookings - 1"),
			"class_sessions_lock_version":     gorm.Expr("class_sessions_lock_version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if sess.ClassSessionsCurrentBookings == 0 {
			return nil // sudah di floor
		}
		return ErrConcurrentModification
	}
	sess.ClassSessionsCurrentBookings--
	sess.ClassSessionsLockVersion++
	return nil
}

// bumpWaitlistCount: delta ±1, floor di 0.
func bumpWaitlistCount(tx *gorm.DB, sess *scheduleModel.ClassSessionModel, delta int) error {
	q := tx.Model(&scheduleModel.ClassSessionModel{}).
		Where("class_sessions_id = ?", sess.ClassSessionsID).
		Where("class_sessions_lock_version = ?", sess.ClassSessionsLockVersion)
	if delta < 0 {
		q = q.Where("class_sessions_waitlist_count > 0")
	}
	res := q.Updates(map[string]interface{}{
		"class_sessions_waitlist_count": gorm.Expr("class_sessions_waitlist_count + ?", delta),
		"class_sessions_lock_version":   gorm.Expr("class_sessions_lock_version + 1"),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if delta < 0 && sess.ClassSessionsWaitlistCount == 0 {
			return nil
		}
		return ErrConcurrentModification
	}
	sess.ClassSessionsWaitlistCount += delta
	sess.ClassSessionsLockVersion++
	return nil
}

// bumpCheckedInCount: increment checked_in_count.
func bumpCheckedInCount(tx *gorm.DB, sess *scheduleModel.ClassSessionModel) error {
	res := tx.Model(&scheduleModel.ClassSessionModel{}).
		Where("class_sessions_id = ?", sess.ClassSessionsID).
		Where("class_sessions_lock_version = ?", sess.ClassSessionsLockVersion).
		Updates(map[string]interface{}{
			"class_sessions_checked_in_count": gorm.Expr("class_sessions_checked_in_count + 1"),
			"class_sessions_lock_version":     gorm.Expr("class_sessions_lock_version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentModification
	}
	sess.ClassSessionsCheckedInCount++
	sess.ClassSessionsLockVersion++
	return nil
}
