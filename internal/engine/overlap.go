package engine

import "time"

// Overlaps reports whether two half-open date ranges [startA, endA)
// and [startB, endB) intersect.  A range occupies every date d with
// start <= d < end, so a range whose end equals another's start is
// adjacent, not overlapping, and a zero-length range (start == end)
// never overlaps anything.  This single predicate underlies
// booking-vs-package and package-vs-booking checks; the booking
// availability check uses its own, deliberately stricter rule (see
// RoomIsAvailable).
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// OverlapNights returns the number of nights shared by the two
// half-open ranges, or zero when they do not intersect.
func OverlapNights(startA, endA, startB, endB time.Time) int {
	if !Overlaps(startA, endA, startB, endB) {
		return 0
	}
	start := startA
	if startB.After(start) {
		start = startB
	}
	end := endA
	if endB.Before(end) {
		end = endB
	}
	return nightsBetween(start, end)
}

// nightsBetween counts whole nights in [start, end).  Both arguments
// must already be normalized to midnight.
func nightsBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	n := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// atMidnightUTC truncates a timestamp to its calendar date in UTC.
// All engine date math happens on normalized dates so that callers
// passing timestamps with a time-of-day component cannot skew night
// counts.
func atMidnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
