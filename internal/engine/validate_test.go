package engine

import (
	"errors"
	"testing"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func TestValidatePricePeriodShape(t *testing.T) {
	cases := []struct {
		name string
		p    model.RoomPricePeriod
		want error
	}{
		{"ok", model.RoomPricePeriod{RoomType: "Delux", StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10), PriceCents: 120_00}, nil},
		{"single day", model.RoomPricePeriod{RoomType: "Delux", StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 1), PriceCents: 120_00}, nil},
		{"blank room type", model.RoomPricePeriod{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10), PriceCents: 120_00}, ErrValidation},
		{"inverted dates", model.RoomPricePeriod{RoomType: "Delux", StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 1), PriceCents: 120_00}, ErrValidation},
		{"zero price", model.RoomPricePeriod{RoomType: "Delux", StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10)}, ErrValidation},
	}
	for _, tc := range cases {
		err := ValidatePricePeriod(tc.p, nil, 0)
		if tc.want == nil && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidatePricePeriodOverlap(t *testing.T) {
	existing := []model.RoomPricePeriod{{
		ID: 3, RoomType: "Delux",
		StartDate: date(2024, 6, 5), EndDate: date(2024, 6, 8), PriceCents: 150_00,
	}}
	p := model.RoomPricePeriod{
		RoomType:  "Delux",
		StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10), PriceCents: 120_00,
	}
	if err := ValidatePricePeriod(p, existing, 0); !errors.Is(err, ErrConflict) {
		t.Fatalf("overlapping period: err = %v, want ErrConflict", err)
	}

	// Inclusive ranges: sharing a single boundary day still overlaps.
	touching := model.RoomPricePeriod{
		RoomType:  "Delux",
		StartDate: date(2024, 6, 8), EndDate: date(2024, 6, 12), PriceCents: 120_00,
	}
	if err := ValidatePricePeriod(touching, existing, 0); !errors.Is(err, ErrConflict) {
		t.Fatalf("boundary-day overlap: err = %v, want ErrConflict", err)
	}

	clear := model.RoomPricePeriod{
		RoomType:  "Delux",
		StartDate: date(2024, 6, 9), EndDate: date(2024, 6, 12), PriceCents: 120_00,
	}
	if err := ValidatePricePeriod(clear, existing, 0); err != nil {
		t.Fatalf("disjoint period rejected: %v", err)
	}
}

func TestValidatePricePeriodExcludesSelfOnUpdate(t *testing.T) {
	existing := []model.RoomPricePeriod{{
		ID: 3, RoomType: "Delux",
		StartDate: date(2024, 6, 5), EndDate: date(2024, 6, 8), PriceCents: 150_00,
	}}
	updated := model.RoomPricePeriod{
		ID: 3, RoomType: "Delux",
		StartDate: date(2024, 6, 4), EndDate: date(2024, 6, 9), PriceCents: 160_00,
	}
	if err := ValidatePricePeriod(updated, existing, 3); err != nil {
		t.Fatalf("update overlapping only itself must pass: %v", err)
	}
}

func TestValidatePricePeriodOtherRoomTypeDoesNotConflict(t *testing.T) {
	existing := []model.RoomPricePeriod{{
		ID: 3, RoomType: "Suite",
		StartDate: date(2024, 6, 5), EndDate: date(2024, 6, 8), PriceCents: 150_00,
	}}
	p := model.RoomPricePeriod{
		RoomType:  "Delux",
		StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10), PriceCents: 120_00,
	}
	if err := ValidatePricePeriod(p, existing, 0); err != nil {
		t.Fatalf("periods for different room types must not conflict: %v", err)
	}
}
