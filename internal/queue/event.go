// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is successfully confirmed.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID        uint64 `json:"booking_id"`
    UserID           uint64 `json:"user_id"`
    RoomID           uint64 `json:"room_id"`
    RoomType         string `json:"room_type"`
    HolidayPackage   string `json:"holiday_package,omitempty"`
    CheckInDate      string `json:"check_in_date"`
    CheckOutDate     string `json:"check_out_date"`
    Nights           int    `json:"nights"`
    ConfirmationCode string `json:"confirmation_code"`
    TotalPriceCents  uint32 `json:"total_price_cents"`
    ConfirmedAt      string `json:"confirmed_at"`
}
