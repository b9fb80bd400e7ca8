package service

import (
	"testing"

	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
)

func TestWaitlistHasPriority(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		max      int
		waitlist int
		want     bool
	}{
		{"empty waitlist with spots free", 3, 10, 0, false},
		{"empty waitlist and full", 10, 10, 0, false},
		{"queue waits while full", 10, 10, 4, true},
		{"freed spot still belongs to the queue", 9, 10, 4, true},
		{"queue keeps priority with plenty of spots free", 5, 10, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &scheduleModel.ClassSessionModel{
				ClassSessionsMaxCapacity:     tt.max,
				ClassSessionsCurrentBookings: tt.current,
				ClassSessionsWaitlistCount:   tt.waitlist,
			}
			if got := waitlistHasPriority(sess); got != tt.want {
				t.Fatalf("waitlistHasPriority(current=%d max=%d waitlist=%d) = %v, want %v",
					tt.current, tt.max, tt.waitlist, got, tt.want)
			}
		})
	}
}
