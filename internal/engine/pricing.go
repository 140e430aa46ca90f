package engine

import (
	"sort"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// NightlyPrice is the resolved price for a single night of a stay.
// Period points at the price period that supplied the price, or nil
// when the night fell back to the room's base price.
type NightlyPrice struct {
	Date       time.Time
	PriceCents uint32
	Period     *model.RoomPricePeriod
}

// PriceBreakdown is one maximal run of contiguous nights sharing a
// resolved nightly price.  EndDate is exclusive, consistent with
// booking semantics: the segment covers nights in [StartDate, EndDate).
type PriceBreakdown struct {
	Description    string    `json:"description"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Nights         int       `json:"nights"`
	PricePerNight  uint32    `json:"price_per_night_cents"`
	TotalForPeriod uint32    `json:"total_for_period_cents"`
}

// PriceCalculation is the full result of pricing a stay.  It is
// derived on demand and never persisted; TotalCents is the exact sum
// over all nights, AveragePerNight is rounded half-up to whole cents,
// and HasPeriodPricing is true iff at least one night resolved to a
// price period rather than the base price.
type PriceCalculation struct {
	TotalCents       uint32           `json:"total_cents"`
	AveragePerNight  uint32           `json:"average_per_night_cents"`
	Nights           int              `json:"nights"`
	HasPeriodPricing bool             `json:"has_period_pricing"`
	Breakdown        []PriceBreakdown `json:"breakdown"`
}

// standardPriceLabel describes nights charged at the room's base
// price in breakdown segments.
const standardPriceLabel = "Standard price"

// ResolveNightlyPrices resolves the price of every night in
// [checkIn, checkOut) for the given room type.  Periods whose
// inclusive range covers a night override the base price; nights
// covered by no period fall back to baseCents.  Periods for other
// room types are ignored rather than silently mispriced.  Periods for
// the same room type must not overlap; should corrupt data present
// more than one match for a night, the period with the earliest start
// date wins deterministically.
func ResolveNightlyPrices(roomType string, baseCents uint32, periods []model.RoomPricePeriod, checkIn, checkOut time.Time) ([]NightlyPrice, error) {
	in, out, err := validateStayRange(roomType, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	matching := make([]model.RoomPricePeriod, 0, len(periods))
	for _, p := range periods {
		if p.RoomType != roomType {
			continue
		}
		// Inclusive period range vs half-open stay: a period is
		// relevant when it covers at least one night before check-out.
		if !p.StartDate.After(out.AddDate(0, 0, -1)) && !p.EndDate.Before(in) {
			matching = append(matching, p)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].StartDate.Before(matching[j].StartDate)
	})

	nights := make([]NightlyPrice, 0, nightsBetween(in, out))
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		np := NightlyPrice{Date: d, PriceCents: baseCents}
		for i := range matching {
			if matching[i].Covers(d) {
				np.PriceCents = matching[i].PriceCents
				np.Period = &matching[i]
				break
			}
		}
		nights = append(nights, np)
	}
	return nights, nil
}

// CalculatePrice prices a stay in the given room, walking the
// per-night resolution and merging consecutive nights of identical
// price into breakdown segments.  A segment's description comes from
// the period that priced its first night, or "Standard price" for
// base-priced nights.  The sum of segment nights always equals the
// total night count and segments are date-contiguous with no gaps.
func CalculatePrice(room model.Room, periods []model.RoomPricePeriod, checkIn, checkOut time.Time) (*PriceCalculation, error) {
	nights, err := ResolveNightlyPrices(room.RoomType, room.BasePriceCents, periods, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	calc := &PriceCalculation{Nights: len(nights)}
	var cur *PriceBreakdown
	for _, n := range nights {
		if n.Period != nil {
			calc.HasPeriodPricing = true
		}
		if cur == nil || n.PriceCents != cur.PricePerNight {
			if cur != nil {
				calc.Breakdown = append(calc.Breakdown, *cur)
			}
			cur = &PriceBreakdown{
				Description:   describeNight(n),
				StartDate:     n.Date,
				PricePerNight: n.PriceCents,
			}
		}
		cur.Nights++
		cur.TotalForPeriod += n.PriceCents
		cur.EndDate = n.Date.AddDate(0, 0, 1)
		calc.TotalCents += n.PriceCents
	}
	if cur != nil {
		calc.Breakdown = append(calc.Breakdown, *cur)
	}
	calc.AveragePerNight = divRoundHalfUp(uint64(calc.TotalCents), uint64(calc.Nights))
	return calc, nil
}

// describeNight labels a resolved night for breakdown display.
func describeNight(n NightlyPrice) string {
	if n.Period == nil {
		return standardPriceLabel
	}
	if n.Period.Description != "" {
		return n.Period.Description
	}
	return "Period " + n.Period.StartDate.Format("2006-01-02") + " - " + n.Period.EndDate.Format("2006-01-02")
}

// divRoundHalfUp divides total by count rounding half-up, in cents.
// count must be positive; pricing rejects zero-night stays before any
// division happens.
func divRoundHalfUp(total, count uint64) uint32 {
	q := total / count
	r := total % count
	if r*2 >= count {
		q++
	}
	return uint32(q)
}
