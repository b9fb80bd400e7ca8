// file: internals/features/classes/bookings/service/scheduler.go
package service

import (
	"context"
	"log"
	"time"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
)

/* ======================================================
   Scheduler: trigger eksternal periodik yang memanggil
   operasi state machine yang sama (bukan thread di dalam
   engine). Setelah session berakhir:
   - booking CONFIRMED yang tidak check-in → MarkNoShow
   - booking CHECKED_IN → Complete
   - session scheduled/in_progress → completed
====================================================== */

func StartBookingScheduler(svc *BookingService, interval time.Duration) chan struct{} {
	if interval <= 0 {
		interval = time.Minute
	}
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepEndedSessions(svc)
			case <-stop:
				return
			}
		}
	}()
	log.Printf("⏱ Booking scheduler aktif (interval %s)", interval)
	return stop
}

func sweepEndedSessions(svc *BookingService) {
	ctx := context.Background()
	now := svc.now()

	var sessions []scheduleModel.ClassSessionModel
	if err := svc.DB.WithContext(ctx).
		Where("class_sessions_end_at < ?", now).
		Where("class_sessions_status IN ?", []scheduleModel.ClassSessionStatus{
			scheduleModel.ClassSessionScheduled,
			scheduleModel.ClassSessionInProgress,
		}).
		Limit(100).
		Find(&sessions).Error; err != nil {
		log.Printf("[Scheduler] load ended sessions: %v", err)
		return
	}

	for i := range sessions {
		sess := &sessions[i]

		var stale []bookingModel.BookingModel
		if err := svc.DB.WithContext(ctx).
			Where("bookings_session_id = ?", sess.ClassSessionsID).
			Where("bookings_status IN ?", []bookingModel.BookingStatus{
				bookingModel.BookingConfirmed,
				bookingModel.BookingCheckedIn,
			}).
			Find(&stale).Error; err != nil {
			log.Printf("[Scheduler] load bookings session=%s: %v", sess.ClassSessionsID, err)
			continue
		}

		stalled := false
		for j := range stale {
			b := &stale[j]
			switch b.BookingsStatus {
			case bookingModel.BookingConfirmed:
				if _, err := svc.MarkNoShow(ctx, b.BookingsID, false); err != nil {
					log.Printf("[Scheduler] mark no-show booking=%s: %v", b.BookingsID, err)
					stalled = true
				}
			case bookingModel.BookingCheckedIn:
				if _, err := svc.Complete(ctx, b.BookingsID); err != nil {
					log.Printf("[Scheduler] complete booking=%s: %v", b.BookingsID, err)
					stalled = true
				}
			}
		}

		// Status session baru di-flip setelah SEMUA booking-nya beres;
		// kalau ada yang gagal, session dibiarkan supaya sweep
		// berikutnya (filter by status) memungut ulang booking itu
		if stalled {
			continue
		}

		if err := svc.DB.WithContext(ctx).
			Model(&scheduleModel.ClassSessionModel{}).
			Where("class_sessions_id = ?", sess.ClassSessionsID).
			UpdateColumn("class_sessions_status", scheduleModel.ClassSessionCompleted).
			Error; err != nil {
			log.Printf("[Scheduler] complete session=%s: %v", sess.ClassSessionsID, err)
		}
	}
}
