package engine

import (
	"errors"
	"testing"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func partialPackage() model.HolidayPackage {
	return model.HolidayPackage{
		ID: 9, Name: "Spring Escape",
		StartDate: date(2024, 4, 1), EndDate: date(2024, 4, 8),
		IsActive: true, AllowPartialBookings: true,
		RoomTypePrices: map[string]uint32{"Suite": 900_00, "Delux": 700_00},
	}
}

func TestValidateBookingAgainstPackagePartialConflict(t *testing.T) {
	pkg := partialPackage()
	existing := []model.Booking{
		{CheckInDate: date(2024, 4, 3), CheckOutDate: date(2024, 4, 5)},
	}
	if err := ValidateBookingAgainstPackage(pkg, existing); !errors.Is(err, ErrConflict) {
		t.Fatalf("ordinary booking inside window: err = %v, want ErrConflict", err)
	}
}

func TestValidateBookingAgainstPackageIgnoresPackageBookings(t *testing.T) {
	pkg := partialPackage()
	pid := pkg.ID
	existing := []model.Booking{
		{HolidayPackageID: &pid, CheckInDate: date(2024, 4, 3), CheckOutDate: date(2024, 4, 5)},
	}
	if err := ValidateBookingAgainstPackage(pkg, existing); err != nil {
		t.Fatalf("package bookings must not invalidate the package: %v", err)
	}
}

func TestValidateBookingAgainstPackageAdjacentIsFine(t *testing.T) {
	pkg := partialPackage()
	existing := []model.Booking{
		{CheckInDate: date(2024, 3, 28), CheckOutDate: date(2024, 4, 1)},
		{CheckInDate: date(2024, 4, 8), CheckOutDate: date(2024, 4, 10)},
	}
	if err := ValidateBookingAgainstPackage(pkg, existing); err != nil {
		t.Fatalf("adjacent bookings must not conflict: %v", err)
	}
}

func TestValidateBookingAgainstNonDestructiblePackageSkipsScan(t *testing.T) {
	pkg := partialPackage()
	pkg.AllowPartialBookings = false
	// Even a booking inside the window does not matter here: ordinary
	// bookings could never have been created inside a non-destructible
	// window in the first place.
	existing := []model.Booking{
		{CheckInDate: date(2024, 4, 3), CheckOutDate: date(2024, 4, 5)},
	}
	if err := ValidateBookingAgainstPackage(pkg, existing); err != nil {
		t.Fatalf("non-destructible package must skip the conflict scan: %v", err)
	}
}

func TestValidateBookingAgainstInactivePackage(t *testing.T) {
	pkg := partialPackage()
	pkg.IsActive = false
	if err := ValidateBookingAgainstPackage(pkg, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive package: err = %v, want ErrNotFound", err)
	}
}

func TestBlockingPackageFirstMatchWins(t *testing.T) {
	pkgs := []model.HolidayPackage{
		{Name: "first", StartDate: date(2024, 4, 1), EndDate: date(2024, 4, 8), IsActive: true,
			RoomTypePrices: map[string]uint32{"Suite": 900_00}},
		{Name: "second", StartDate: date(2024, 4, 1), EndDate: date(2024, 4, 8), IsActive: true,
			RoomTypePrices: map[string]uint32{"Suite": 800_00}},
	}
	got := BlockingPackage("Suite", date(2024, 4, 2), date(2024, 4, 4), pkgs)
	if got == nil || got.Name != "first" {
		t.Fatalf("expected first matching package, got %+v", got)
	}
}

func TestPackagePriceForRoomType(t *testing.T) {
	pkg := partialPackage()
	price, err := PackagePriceForRoomType(pkg, "Delux")
	if err != nil || price != 700_00 {
		t.Fatalf("price = %d, err = %v", price, err)
	}
	if _, err := PackagePriceForRoomType(pkg, "Penthouse"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unlisted room type: err = %v, want ErrNotFound", err)
	}
}
