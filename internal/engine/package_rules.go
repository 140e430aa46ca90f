package engine

import (
	"fmt"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// BlockingPackage returns the first active, non-destructible holiday
// package that prices the given room type and whose half-open window
// overlaps [checkIn, checkOut), or nil when none does.  Packages that
// allow partial bookings never block ordinary bookings.
func BlockingPackage(roomType string, checkIn, checkOut time.Time, packages []model.HolidayPackage) *model.HolidayPackage {
	in := atMidnightUTC(checkIn)
	out := atMidnightUTC(checkOut)
	for i := range packages {
		p := &packages[i]
		if !p.IsActive || p.AllowPartialBookings {
			continue
		}
		if !p.PricesRoomType(roomType) {
			continue
		}
		if Overlaps(p.StartDate, p.EndDate, in, out) {
			return p
		}
	}
	return nil
}

// ValidateBookingAgainstPackage decides whether a candidate package
// booking may proceed given the room's existing bookings.  The rule
// only applies to packages that allow partial bookings: ordinary
// bookings may have landed inside the package window since the
// package was created, in which case the package can no longer be
// booked.  Non-destructible packages skip the check entirely; their
// window was exclusively reserved at administration time and ordinary
// bookings inside it are rejected by BlockingPackage.
func ValidateBookingAgainstPackage(pkg model.HolidayPackage, existing []model.Booking) error {
	if !pkg.IsActive {
		return fmt.Errorf("holiday package %q is not active: %w", pkg.Name, ErrNotFound)
	}
	if !pkg.AllowPartialBookings {
		return nil
	}
	for _, b := range existing {
		if b.IsPackageBooking() {
			continue
		}
		if Overlaps(b.CheckInDate, b.CheckOutDate, pkg.StartDate, pkg.EndDate) {
			return fmt.Errorf("holiday package %q is no longer available, some dates are already booked: %w", pkg.Name, ErrConflict)
		}
	}
	return nil
}

// PackagePriceForRoomType returns the package price in cents for the
// given room type.  It fails with ErrNotFound when the package does
// not list that room type.
func PackagePriceForRoomType(pkg model.HolidayPackage, roomType string) (uint32, error) {
	price, ok := pkg.RoomTypePrices[roomType]
	if !ok {
		return 0, fmt.Errorf("holiday package %q has no price for room type %q: %w", pkg.Name, roomType, ErrNotFound)
	}
	return price, nil
}
