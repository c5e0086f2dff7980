package schedule

import "time"

// Friday under the Monday=0..Sunday=6 weekday convention
const fridayIndex = 4

// LastFriday returns the calendar date (midnight, same location) of the
// reference Friday for the given moment. On a Friday before 09:00 the
// previous week's Friday is used instead, so a report generated early on
// Friday morning still covers the week that ended the Friday before.
func LastFriday(now time.Time) time.Time {
	days := (mondayIndexed(now.Weekday()) - fridayIndex + 7) % 7
	if days == 0 && now.Hour() < 9 {
		days = 7
	}
	d := now.AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// mondayIndexed converts Go's Sunday=0 weekday numbering to Monday=0..Sunday=6
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// SameOrAfterDate reports whether ts falls on a calendar date equal to
// or later than cutoff. Time of day is discarded on both sides; each
// timestamp is read in its own location.
func SameOrAfterDate(ts, cutoff time.Time) bool {
	return !dateOf(ts).Before(dateOf(cutoff))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
