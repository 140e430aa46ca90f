package model

import "time"

// RoomPricePeriod overrides the nightly price for one room type over
// a date range.  Unlike booking ranges, a period's range is inclusive
// on both ends: a period covers every night d with
// StartDate <= d <= EndDate.  Periods for the same room type must not
// overlap; this is enforced when a period is created or updated, not
// when prices are resolved.
//
// Fields:
//  ID          – primary key identifier.
//  RoomType    – room type the override applies to.
//  StartDate   – first covered night (inclusive, UTC midnight).
//  EndDate     – last covered night (inclusive, >= StartDate).
//  PriceCents  – overriding nightly price in cents (> 0).
//  Description – optional label (e.g. "Summer season").
type RoomPricePeriod struct {
	ID          uint64    // room_price_periods.id
	RoomType    string    // room_price_periods.room_type
	StartDate   time.Time // room_price_periods.start_date
	EndDate     time.Time // room_price_periods.end_date
	PriceCents  uint32    // room_price_periods.price_cents
	Description string    // room_price_periods.description
}

// Covers reports whether the period's inclusive range contains the
// given night.
func (p RoomPricePeriod) Covers(night time.Time) bool {
	return !night.Before(p.StartDate) && !night.After(p.EndDate)
}
