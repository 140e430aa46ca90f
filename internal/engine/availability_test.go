package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func booking(in, out time.Time) model.Booking {
	return model.Booking{CheckInDate: in, CheckOutDate: out}
}

func TestRoomIsAvailableNoBookings(t *testing.T) {
	if !RoomIsAvailable(date(2024, 1, 1), date(2024, 1, 4), nil) {
		t.Fatal("empty room should be available")
	}
}

func TestRoomIsAvailableConflicts(t *testing.T) {
	existing := []model.Booking{booking(date(2024, 1, 5), date(2024, 1, 10))}
	cases := []struct {
		name      string
		in, out   time.Time
		available bool
	}{
		{"same check-in", date(2024, 1, 5), date(2024, 1, 12), false},
		{"check-in inside", date(2024, 1, 7), date(2024, 1, 12), false},
		{"covers existing", date(2024, 1, 4), date(2024, 1, 11), false},
		{"same check-out from earlier", date(2024, 1, 3), date(2024, 1, 10), false},
		{"ends before existing ends", date(2024, 1, 1), date(2024, 1, 4), false},
		{"after with gap", date(2024, 1, 11), date(2024, 1, 14), true},
	}
	for _, tc := range cases {
		if got := RoomIsAvailable(tc.in, tc.out, existing); got != tc.available {
			t.Errorf("%s: available = %v, want %v", tc.name, got, tc.available)
		}
	}
}

// Arriving on an existing booking's departure date is rejected even
// though the half-open intervals do not share a night.
func TestRoomIsAvailableRejectsSameDayTurnover(t *testing.T) {
	existing := []model.Booking{booking(date(2024, 1, 5), date(2024, 1, 10))}
	if RoomIsAvailable(date(2024, 1, 10), date(2024, 1, 14), existing) {
		t.Fatal("check-in on existing check-out date must conflict")
	}
	if Overlaps(date(2024, 1, 10), date(2024, 1, 14), date(2024, 1, 5), date(2024, 1, 10)) {
		t.Fatal("sanity: pure interval test should not consider them overlapping")
	}
}

func TestCheckAvailabilityBlockedByPackage(t *testing.T) {
	pkgs := []model.HolidayPackage{{
		Name:      "New Year Gala",
		StartDate: date(2024, 12, 24),
		EndDate:   date(2025, 1, 2),
		IsActive:  true,
		RoomTypePrices: map[string]uint32{
			"Suite": 500_00,
		},
	}}
	got, err := CheckAvailability("Suite", date(2024, 12, 30), date(2025, 1, 1), pkgs, nil)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if got.Available {
		t.Fatal("stay inside a non-destructible package window must be blocked")
	}
	if got.BlockingPackage != "New Year Gala" {
		t.Fatalf("blocking package = %q, want %q", got.BlockingPackage, "New Year Gala")
	}
}

func TestCheckAvailabilityIgnoresIrrelevantPackages(t *testing.T) {
	pkgs := []model.HolidayPackage{
		{Name: "inactive", StartDate: date(2024, 12, 24), EndDate: date(2025, 1, 2), IsActive: false,
			RoomTypePrices: map[string]uint32{"Suite": 500_00}},
		{Name: "partial", StartDate: date(2024, 12, 24), EndDate: date(2025, 1, 2), IsActive: true, AllowPartialBookings: true,
			RoomTypePrices: map[string]uint32{"Suite": 500_00}},
		{Name: "other type", StartDate: date(2024, 12, 24), EndDate: date(2025, 1, 2), IsActive: true,
			RoomTypePrices: map[string]uint32{"Delux": 300_00}},
	}
	got, err := CheckAvailability("Suite", date(2024, 12, 30), date(2025, 1, 1), pkgs, nil)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !got.Available {
		t.Fatalf("no relevant package should block: %+v", got)
	}
}

func TestCheckAvailabilityValidatesInput(t *testing.T) {
	if _, err := CheckAvailability("", date(2024, 1, 1), date(2024, 1, 2), nil, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank room type: err = %v, want ErrValidation", err)
	}
	if _, err := CheckAvailability("Suite", date(2024, 1, 5), date(2024, 1, 5), nil, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero-night stay: err = %v, want ErrValidation", err)
	}
	if _, err := CheckAvailability("Suite", date(2024, 1, 5), date(2024, 1, 1), nil, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("inverted range: err = %v, want ErrValidation", err)
	}
}
