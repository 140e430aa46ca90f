package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func suite100() model.Room {
	return model.Room{ID: 1, RoomType: "Suite", BasePriceCents: 100_00}
}

func TestCalculatePriceBaseOnly(t *testing.T) {
	calc, err := CalculatePrice(suite100(), nil, date(2024, 1, 1), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("CalculatePrice: %v", err)
	}
	if calc.Nights != 3 {
		t.Fatalf("nights = %d, want 3", calc.Nights)
	}
	if calc.TotalCents != 300_00 {
		t.Fatalf("total = %d, want 30000", calc.TotalCents)
	}
	if calc.HasPeriodPricing {
		t.Fatal("no period pricing expected")
	}
	if calc.AveragePerNight != 100_00 {
		t.Fatalf("average = %d, want 10000", calc.AveragePerNight)
	}
	if len(calc.Breakdown) != 1 {
		t.Fatalf("breakdown segments = %d, want 1", len(calc.Breakdown))
	}
	seg := calc.Breakdown[0]
	if seg.Description != "Standard price" || seg.Nights != 3 || seg.TotalForPeriod != 300_00 {
		t.Fatalf("unexpected segment: %+v", seg)
	}
}

func TestCalculatePriceWithPeriod(t *testing.T) {
	periods := []model.RoomPricePeriod{{
		ID: 7, RoomType: "Suite",
		StartDate: date(2024, 1, 2), EndDate: date(2024, 1, 3),
		PriceCents: 150_00, Description: "Winter special",
	}}
	calc, err := CalculatePrice(suite100(), periods, date(2024, 1, 1), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("CalculatePrice: %v", err)
	}
	if calc.TotalCents != 400_00 {
		t.Fatalf("total = %d, want 40000", calc.TotalCents)
	}
	if !calc.HasPeriodPricing {
		t.Fatal("expected period pricing")
	}
	if len(calc.Breakdown) != 2 {
		t.Fatalf("breakdown segments = %d, want 2: %+v", len(calc.Breakdown), calc.Breakdown)
	}
	first, second := calc.Breakdown[0], calc.Breakdown[1]
	if first.Nights != 1 || first.PricePerNight != 100_00 || !first.StartDate.Equal(date(2024, 1, 1)) || !first.EndDate.Equal(date(2024, 1, 2)) {
		t.Fatalf("unexpected first segment: %+v", first)
	}
	if second.Nights != 2 || second.PricePerNight != 150_00 || second.TotalForPeriod != 300_00 || !second.EndDate.Equal(date(2024, 1, 4)) {
		t.Fatalf("unexpected second segment: %+v", second)
	}
	if second.Description != "Winter special" {
		t.Fatalf("description = %q", second.Description)
	}
}

func TestCalculatePriceIdempotent(t *testing.T) {
	periods := []model.RoomPricePeriod{{
		ID: 7, RoomType: "Suite",
		StartDate: date(2024, 1, 2), EndDate: date(2024, 1, 3), PriceCents: 150_00,
	}}
	a, err := CalculatePrice(suite100(), periods, date(2024, 1, 1), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	b, err := CalculatePrice(suite100(), periods, date(2024, 1, 1), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ:\n%+v\n%+v", a, b)
	}
}

// The breakdown must partition the stay: night counts sum to the
// total and segments are contiguous with no gaps or overlaps.
func TestBreakdownPartitionsStay(t *testing.T) {
	periods := []model.RoomPricePeriod{
		{ID: 1, RoomType: "Suite", StartDate: date(2024, 1, 2), EndDate: date(2024, 1, 3), PriceCents: 150_00},
		{ID: 2, RoomType: "Suite", StartDate: date(2024, 1, 5), EndDate: date(2024, 1, 6), PriceCents: 80_00},
	}
	calc, err := CalculatePrice(suite100(), periods, date(2024, 1, 1), date(2024, 1, 8))
	if err != nil {
		t.Fatalf("CalculatePrice: %v", err)
	}
	sum := 0
	for i, seg := range calc.Breakdown {
		sum += seg.Nights
		if seg.TotalForPeriod != uint32(seg.Nights)*seg.PricePerNight {
			t.Fatalf("segment %d total %d != nights*price", i, seg.TotalForPeriod)
		}
		if i > 0 && !seg.StartDate.Equal(calc.Breakdown[i-1].EndDate) {
			t.Fatalf("gap before segment %d: %+v", i, calc.Breakdown)
		}
	}
	if sum != calc.Nights {
		t.Fatalf("segment nights sum %d != %d", sum, calc.Nights)
	}
	if !calc.Breakdown[0].StartDate.Equal(date(2024, 1, 1)) {
		t.Fatalf("first segment starts at %v", calc.Breakdown[0].StartDate)
	}
	last := calc.Breakdown[len(calc.Breakdown)-1]
	if !last.EndDate.Equal(date(2024, 1, 8)) {
		t.Fatalf("last segment ends at %v", last.EndDate)
	}
}

func TestResolveNightlyPricesTieBreak(t *testing.T) {
	// Overlapping periods are invalid data; the earliest start date
	// must win deterministically regardless of slice order.
	periods := []model.RoomPricePeriod{
		{ID: 2, RoomType: "Suite", StartDate: date(2024, 1, 2), EndDate: date(2024, 1, 6), PriceCents: 200_00},
		{ID: 1, RoomType: "Suite", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 4), PriceCents: 120_00},
	}
	nights, err := ResolveNightlyPrices("Suite", 100_00, periods, date(2024, 1, 3), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("ResolveNightlyPrices: %v", err)
	}
	if len(nights) != 1 || nights[0].PriceCents != 120_00 {
		t.Fatalf("expected earliest period to win, got %+v", nights)
	}
}

func TestResolveNightlyPricesIgnoresOtherRoomTypes(t *testing.T) {
	periods := []model.RoomPricePeriod{
		{ID: 1, RoomType: "Delux", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 31), PriceCents: 999_00},
	}
	nights, err := ResolveNightlyPrices("Suite", 100_00, periods, date(2024, 1, 10), date(2024, 1, 12))
	if err != nil {
		t.Fatalf("ResolveNightlyPrices: %v", err)
	}
	for _, n := range nights {
		if n.PriceCents != 100_00 || n.Period != nil {
			t.Fatalf("period for another room type applied: %+v", n)
		}
	}
}

func TestResolveMatchesCalculateTotal(t *testing.T) {
	periods := []model.RoomPricePeriod{
		{ID: 1, RoomType: "Suite", StartDate: date(2024, 1, 2), EndDate: date(2024, 1, 3), PriceCents: 150_00},
	}
	nights, err := ResolveNightlyPrices("Suite", 100_00, periods, date(2024, 1, 1), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("ResolveNightlyPrices: %v", err)
	}
	var sum uint32
	for _, n := range nights {
		sum += n.PriceCents
	}
	calc, err := CalculatePrice(suite100(), periods, date(2024, 1, 1), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("CalculatePrice: %v", err)
	}
	if sum != calc.TotalCents {
		t.Fatalf("nightly sum %d != total %d", sum, calc.TotalCents)
	}
}

func TestAverageRoundsHalfUp(t *testing.T) {
	// 100.00 + 150.00 + 150.01 over 3 nights = 133.337 -> 133.34
	periods := []model.RoomPricePeriod{
		{ID: 1, RoomType: "Suite", StartDate: date(2024, 1, 2), EndDate: date(2024, 1, 2), PriceCents: 150_00},
		{ID: 2, RoomType: "Suite", StartDate: date(2024, 1, 3), EndDate: date(2024, 1, 3), PriceCents: 150_01},
	}
	calc, err := CalculatePrice(suite100(), periods, date(2024, 1, 1), date(2024, 1, 4))
	if err != nil {
		t.Fatalf("CalculatePrice: %v", err)
	}
	if calc.AveragePerNight != 133_34 {
		t.Fatalf("average = %d, want 13334", calc.AveragePerNight)
	}
}

func TestCalculatePriceRejectsBadRanges(t *testing.T) {
	if _, err := CalculatePrice(suite100(), nil, date(2024, 1, 4), date(2024, 1, 1)); !errors.Is(err, ErrValidation) {
		t.Fatalf("inverted range: err = %v, want ErrValidation", err)
	}
	if _, err := CalculatePrice(suite100(), nil, date(2024, 1, 1), date(2024, 1, 1)); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero nights: err = %v, want ErrValidation", err)
	}
}
