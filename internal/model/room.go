package model

import "time"

// Room represents a bookable hotel room as stored in the `rooms`
// table.  Rooms are grouped by their RoomType string: price periods
// and holiday package prices are administered per room type, not per
// individual room.  A room owns zero or more bookings.
//
// Fields:
//  ID             – primary key identifier.
//  RoomType       – type name shared by similar rooms (e.g. "Suite").
//  BasePriceCents – default nightly price in cents, used for any
//                   night not covered by a price period.
//  Description    – free-form description shown to guests.
//  PhotoURL       – reference to an externally hosted photo.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Room struct {
	ID             uint64    // rooms.id
	RoomType       string    // rooms.room_type
	BasePriceCents uint32    // rooms.base_price_cents
	Description    string    // rooms.description
	PhotoURL       string    // rooms.photo_url
	CreatedAt      time.Time // rooms.created_at
	UpdatedAt      time.Time // rooms.updated_at
}
