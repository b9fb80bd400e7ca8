// file: internals/features/access/policies/service/window_test.go
package service

import (
	"testing"
	"time"
)

func TestInWindow(t *testing.T) {
	tests := []struct {
		name   string
		minute int
		start  int
		end    int
		want   bool
	}{
		{"inside simple window", 600, 540, 720, true},
		{"at start is inside", 540, 540, 720, true},
		{"at end is outside", 720, 540, 720, false},
		{"before window", 500, 540, 720, false},
		{"wraps midnight, late side", 1400, 1380, 60, true},
		{"wraps midnight, early side", 30, 1380, 60, true},
		{"wraps midnight, daytime outside", 600, 1380, 60, false},
		{"wraps midnight, at end outside", 60, 1380, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inWindow(tt.minute, tt.start, tt.end); got != tt.want {
				t.Fatalf("inWindow(%d, %d, %d) = %v, want %v", tt.minute, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	// 2026-01-05 adalah Senin. 14:30 UTC = 17:30 Asia/Riyadh (UTC+3).
	at := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

	wd, min := minuteOfDay(at, "Asia/Riyadh")
	if wd != int(time.Monday) {
		t.Fatalf("weekday = %d, want %d (Monday)", wd, int(time.Monday))
	}
	if want := 17*60 + 30; min != want {
		t.Fatalf("minute = %d, want %d", min, want)
	}
}

func TestMinuteOfDayUnknownTimezoneFallsBackToUTC(t *testing.T) {
	at := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

	wd, min := minuteOfDay(at, "Not/AZone")
	if wd != int(time.Monday) {
		t.Fatalf("weekday = %d, want Monday", wd)
	}
	if want := 14*60 + 30; min != want {
		t.Fatalf("minute = %d, want %d", min, want)
	}
}

func TestMinuteOfDayCrossesDateLine(t *testing.T) {
	// 22:00 UTC Senin = 01:00 Selasa di Asia/Riyadh
	at := time.Date(2026, 1, 5, 22, 0, 0, 0, time.UTC)

	wd, min := minuteOfDay(at, "Asia/Riyadh")
	if wd != int(time.Tuesday) {
		t.Fatalf("weekday = %d, want Tuesday", wd)
	}
	if want := 60; min != want {
		t.Fatalf("minute = %d, want %d", min, want)
	}
}
