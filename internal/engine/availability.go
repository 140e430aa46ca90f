package engine

import (
	"fmt"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Availability is the outcome of an availability check for one room.
// When a non-destructible holiday package blocks the requested dates,
// BlockingPackage carries its name so the caller can surface it.
type Availability struct {
	Available       bool   `json:"available"`
	BlockingPackage string `json:"blocking_package,omitempty"`
}

// bookingConflicts reproduces the legacy conflict rule between a
// candidate stay and one existing booking.  It is deliberately
// stricter than Overlaps: in addition to genuine overlaps it rejects
// a candidate whose check-in equals an existing booking's check-out
// (no same-day turnover), plus two degenerate equality cases kept for
// behavioral fidelity.  The whole rule is isolated here so it can be
// revisited independently of the rest of the engine.
func bookingConflicts(checkIn, checkOut time.Time, e model.Booking) bool {
	switch {
	case checkIn.Equal(e.CheckInDate):
		return true
	case checkOut.Before(e.CheckOutDate):
		return true
	case checkIn.After(e.CheckInDate) && checkIn.Before(e.CheckOutDate):
		return true
	case checkIn.Before(e.CheckInDate) && checkOut.Equal(e.CheckOutDate):
		return true
	case checkIn.Before(e.CheckInDate) && checkOut.After(e.CheckOutDate):
		return true
	case checkIn.Equal(e.CheckOutDate):
		// No same-day turnover: arriving on another guest's departure
		// date is rejected.  This clause also covers the degenerate
		// reversed-range and zero-length equality cases of the
		// original rule set.
		return true
	}
	return false
}

// RoomIsAvailable reports whether a room with the given existing
// bookings can accept a stay over [checkIn, checkOut).  The room is
// available only when no existing booking conflicts under the legacy
// rule in bookingConflicts.
func RoomIsAvailable(checkIn, checkOut time.Time, existing []model.Booking) bool {
	in := atMidnightUTC(checkIn)
	out := atMidnightUTC(checkOut)
	for _, e := range existing {
		if bookingConflicts(in, out, e) {
			return false
		}
	}
	return true
}

// CheckAvailability decides whether an ordinary (non-package) booking
// for the given room type and date range may proceed.  The holiday
// package gate runs first: an active, non-destructible package that
// prices this room type and overlaps the stay blocks the booking
// outright, and its name is surfaced in the result.  Only then the
// room's existing bookings are checked for conflicts.
func CheckAvailability(roomType string, checkIn, checkOut time.Time, packages []model.HolidayPackage, existing []model.Booking) (Availability, error) {
	in, out, err := validateStayRange(roomType, checkIn, checkOut)
	if err != nil {
		return Availability{}, err
	}
	if pkg := BlockingPackage(roomType, in, out, packages); pkg != nil {
		return Availability{Available: false, BlockingPackage: pkg.Name}, nil
	}
	if !RoomIsAvailable(in, out, existing) {
		return Availability{Available: false}, nil
	}
	return Availability{Available: true}, nil
}

// validateStayRange normalizes and validates a booking date range.
// The range must describe at least one night and the room type must
// not be blank.
func validateStayRange(roomType string, checkIn, checkOut time.Time) (in, out time.Time, err error) {
	if roomType == "" {
		return in, out, fmt.Errorf("room type is required: %w", ErrValidation)
	}
	in = atMidnightUTC(checkIn)
	out = atMidnightUTC(checkOut)
	if !out.After(in) {
		return in, out, fmt.Errorf("check-out must be after check-in: %w", ErrValidation)
	}
	return in, out, nil
}
