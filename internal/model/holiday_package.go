package model

import "time"

// HolidayPackage is a hotel-wide offer spanning a date range with a
// fixed package price per room type.  Its date range uses the same
// half-open convention as a booking: EndDate is exclusive for all
// overlap checks.
//
// A package with AllowPartialBookings=false is non-destructible: it
// reserves its whole window for every room type it prices, and
// ordinary bookings for those room types are rejected inside the
// window.  A package with AllowPartialBookings=true merely offers a
// price; ordinary bookings may still land inside its window, but the
// package itself can no longer be booked once they do.
//
// Fields:
//  ID                   – primary key identifier.
//  Name                 – display name surfaced in conflict messages.
//  StartDate            – first night of the package window.
//  EndDate              – end of the window, exclusive.
//  Description          – optional description.
//  PhotoURL             – reference to an externally hosted photo.
//  IsActive             – inactive packages never block or price anything.
//  AllowPartialBookings – see above.
//  RoomTypePrices       – package price in cents keyed by room type.
//  CreatedAt            – creation timestamp.
//  UpdatedAt            – last update timestamp.
type HolidayPackage struct {
	ID                   uint64            // holiday_packages.id
	Name                 string            // holiday_packages.name
	StartDate            time.Time         // holiday_packages.start_date
	EndDate              time.Time         // holiday_packages.end_date
	Description          string            // holiday_packages.description
	PhotoURL             string            // holiday_packages.photo_url
	IsActive             bool              // holiday_packages.is_active
	AllowPartialBookings bool              // holiday_packages.allow_partial_bookings
	RoomTypePrices       map[string]uint32 // holiday_package_room_type_prices rows
	CreatedAt            time.Time         // holiday_packages.created_at
	UpdatedAt            time.Time         // holiday_packages.updated_at
}

// PricesRoomType reports whether the package lists a price for the
// given room type.  Packages only ever block or price the room types
// they list.
func (p HolidayPackage) PricesRoomType(roomType string) bool {
	_, ok := p.RoomTypePrices[roomType]
	return ok
}
