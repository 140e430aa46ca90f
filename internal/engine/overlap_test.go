package engine

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsBasic(t *testing.T) {
	cases := []struct {
		name                           string
		startA, endA, startB, endB     time.Time
		want                           bool
	}{
		{"disjoint", date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 10), date(2024, 1, 15), false},
		{"partial", date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 4), date(2024, 1, 8), true},
		{"contained", date(2024, 1, 1), date(2024, 1, 10), date(2024, 1, 3), date(2024, 1, 5), true},
		{"identical", date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 1), date(2024, 1, 5), true},
		{"adjacent end-to-start", date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 5), date(2024, 1, 9), false},
		{"zero length inside", date(2024, 1, 3), date(2024, 1, 3), date(2024, 1, 1), date(2024, 1, 5), false},
		{"both zero length equal", date(2024, 1, 3), date(2024, 1, 3), date(2024, 1, 3), date(2024, 1, 3), false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.startA, tc.endA, tc.startB, tc.endB); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	ranges := [][2]time.Time{
		{date(2024, 1, 1), date(2024, 1, 5)},
		{date(2024, 1, 4), date(2024, 1, 8)},
		{date(2024, 1, 5), date(2024, 1, 9)},
		{date(2024, 1, 3), date(2024, 1, 3)},
		{date(2024, 2, 1), date(2024, 2, 10)},
	}
	for _, a := range ranges {
		for _, b := range ranges {
			ab := Overlaps(a[0], a[1], b[0], b[1])
			ba := Overlaps(b[0], b[1], a[0], a[1])
			if ab != ba {
				t.Fatalf("symmetry violated for %v vs %v: %v != %v", a, b, ab, ba)
			}
		}
	}
}

func TestOverlapNights(t *testing.T) {
	if got := OverlapNights(date(2024, 1, 1), date(2024, 1, 10), date(2024, 1, 8), date(2024, 1, 20)); got != 2 {
		t.Fatalf("expected 2 shared nights, got %d", got)
	}
	if got := OverlapNights(date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 5), date(2024, 1, 9)); got != 0 {
		t.Fatalf("adjacent ranges share nights: got %d", got)
	}
}

func TestAtMidnightUTCNormalizes(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	in := time.Date(2024, 6, 1, 23, 45, 0, 0, loc)
	got := atMidnightUTC(in)
	if got.Hour() != 0 || got.Location() != time.UTC {
		t.Fatalf("expected UTC midnight, got %v", got)
	}
}
