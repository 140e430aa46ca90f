package model

import "time"

// Booking records a guest's stay in a specific room.  The date range
// is half-open: a night is occupied for every date d with
// CheckInDate <= d < CheckOutDate, so CheckOutDate itself is the
// departure morning and is never occupied.  Bookings are terminal
// records: they are created once, optionally cancelled (hard delete)
// and never otherwise mutated.
//
// Fields:
//  ID               – primary key identifier.
//  RoomID           – room being booked.
//  UserID           – guest who made the booking.
//  HolidayPackageID – package this booking was made under, if any.
//                     A weak reference: the package outlives the
//                     bookings made against it.
//  CheckInDate      – first occupied night (UTC midnight).
//  CheckOutDate     – departure date, exclusive (must be after check-in).
//  NumAdults        – number of adults staying.
//  NumChildren      – number of children staying.
//  ConfirmationCode – unique opaque code for guest-facing lookup.
//  TotalPriceCents  – total charged amount in cents, fixed at booking time.
//  CreatedAt        – when the booking was made.
type Booking struct {
	ID               uint64    // bookings.id
	RoomID           uint64    // bookings.room_id
	UserID           uint64    // bookings.user_id
	HolidayPackageID *uint64   // bookings.holiday_package_id (nullable)
	CheckInDate      time.Time // bookings.check_in_date
	CheckOutDate     time.Time // bookings.check_out_date
	NumAdults        int       // bookings.num_adults
	NumChildren      int       // bookings.num_children
	ConfirmationCode string    // bookings.confirmation_code
	TotalPriceCents  uint32    // bookings.total_price_cents
	CreatedAt        time.Time // bookings.created_at
}

// IsPackageBooking reports whether the booking was made under a
// holiday package.  Ordinary bookings have no package reference.
func (b Booking) IsPackageBooking() bool { return b.HolidayPackageID != nil }
