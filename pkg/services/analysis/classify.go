package analysis

import "time"

// Timestamps are classified in their own location; the stores in this repo
// persist UTC, so weekday and hour boundaries follow UTC unless a caller
// deliberately attaches another zone.

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func hourOfDay(t time.Time) int {
	return t.Hour()
}

// calendarDate drops the time of day, yielding the key used to count
// distinct spending days.
func calendarDate(t time.Time) string {
	return t.Format("2006-01-02")
}
