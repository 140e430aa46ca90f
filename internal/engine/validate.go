package engine

import (
	"fmt"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ValidatePricePeriod is the create/update gate for price periods.
// It checks the period's own shape (room type present, end date not
// before start date, positive price) and then rejects any inclusive
// date overlap with an existing period for the same room type.  On
// update the period being edited is excluded from the overlap scan
// via excludeID; pass zero when creating.  Violations are caller
// errors (ErrValidation or ErrConflict), never server faults.
func ValidatePricePeriod(p model.RoomPricePeriod, existing []model.RoomPricePeriod, excludeID uint64) error {
	if p.RoomType == "" {
		return fmt.Errorf("room type is required: %w", ErrValidation)
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date must not be before start date: %w", ErrValidation)
	}
	if p.PriceCents == 0 {
		return fmt.Errorf("price must be greater than zero: %w", ErrValidation)
	}
	for _, e := range existing {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if e.RoomType != p.RoomType {
			continue
		}
		// Inclusive ranges overlap when neither lies fully before the other.
		if !e.StartDate.After(p.EndDate) && !e.EndDate.Before(p.StartDate) {
			return fmt.Errorf("period overlaps existing period %s - %s for room type %q: %w",
				e.StartDate.Format("2006-01-02"), e.EndDate.Format("2006-01-02"), p.RoomType, ErrConflict)
		}
	}
	return nil
}
