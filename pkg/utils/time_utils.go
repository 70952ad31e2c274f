package utils

import "time"

// DayBounds returns the inclusive range covering t's calendar day:
// 00:00:00 through 23:59:59 in t's location. Range queries use
// date >= start AND date <= end, so 23:59:59 on the day is included and
// 00:00:00 on the next day is not.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end = time.Date(y, m, d, 23, 59, 59, 0, t.Location())
	return start, end
}

// SameDay reports whether two timestamps fall on the same calendar day
// in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// DayKey formats a timestamp as its grouping key for calendar views.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
