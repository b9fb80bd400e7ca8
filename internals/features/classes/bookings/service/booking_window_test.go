package service

import (
	"testing"
	"time"

	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
)

func TestCheckBookable(t *testing.T) {
	start := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	club := &scheduleModel.ClubModel{ClubsBookingWindowDays: 7}

	session := func(status scheduleModel.ClassSessionStatus) *scheduleModel.ClassSessionModel {
		return &scheduleModel.ClassSessionModel{
			ClassSessionsStartAt: start,
			ClassSessionsStatus:  status,
		}
	}

	tests := []struct {
		name    string
		sess    *scheduleModel.ClassSessionModel
		now     time.Time
		wantErr error
	}{
		{name: "inside window", sess: session(scheduleModel.ClassSessionScheduled), now: start.Add(-24 * time.Hour), wantErr: nil},
		{name: "cancelled session", sess: session(scheduleModel.ClassSessionCancelled), now: start.Add(-24 * time.Hour), wantErr: ErrSessionNotBookable},
		{name: "in-progress session", sess: session(scheduleModel.ClassSessionInProgress), now: start.Add(-24 * time.Hour), wantErr: ErrSessionNotBookable},
		{name: "after start", sess: session(scheduleModel.ClassSessionScheduled), now: start.Add(time.Minute), wantErr: ErrSessionNotBookable},
		{name: "exactly at start", sess: session(scheduleModel.ClassSessionScheduled), now: start, wantErr: ErrSessionNotBookable},
		{name: "window not open yet", sess: session(scheduleModel.ClassSessionScheduled), now: start.AddDate(0, 0, -8), wantErr: ErrSessionNotBookable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkBookable(tt.sess, club, tt.now); err != tt.wantErr {
				t.Fatalf("checkBookable() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckBookableNoWindowLimit(t *testing.T) {
	start := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	club := &scheduleModel.ClubModel{ClubsBookingWindowDays: 0}
	sess := &scheduleModel.ClassSessionModel{
		ClassSessionsStartAt: start,
		ClassSessionsStatus:  scheduleModel.ClassSessionScheduled,
	}
	if err := checkBookable(sess, club, start.AddDate(0, -6, 0)); err != nil {
		t.Fatalf("expected bookable with unlimited window, got %v", err)
	}
}
