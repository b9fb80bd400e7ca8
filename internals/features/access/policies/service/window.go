// file: internals/features/access/policies/service/window.go
package service

import (
	"log"
	"time"
)

// minuteOfDay: menit sejak tengah malam di timezone lokasi.
// Timezone tak dikenal fallback ke UTC (di-log, bukan fatal).
func minuteOfDay(at time.Time, tz string) (weekday int, minute int) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("[AccessPolicy] timezone tidak dikenal %q, fallback UTC", tz)
		loc = time.UTC
	}
	local := at.In(loc)
	return int(local.Weekday()), local.Hour()*60 + local.Minute()
}

// inWindow: start inklusif, end eksklusif. Window yang melewati
// tengah malam (start > end) dibelah dua sisi.
func inWindow(minute, startMinute, endMinute int) bool {
	if startMinute <= endMinute {
		return minute >= startMinute && minute < endMinute
	}
	return minute >= startMinute || minute < endMinute
}
