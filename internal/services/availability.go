package services

import (
	"context"
	"fmt"
	"time"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
)

// AvailabilityService answers whether a venue is free on a calendar
// date. A date is blocked by any pending or confirmed booking for the
// same venue; pending blocks too, so two visitors cannot both hold a
// date while it waits for admin review. Cancelled bookings free the
// date implicitly because every check re-queries live booking status.
type AvailabilityService struct {
	bookings models.BookingsRepo
	catalog  *models.VenueCatalog
	now      func() time.Time
}

func NewAvailabilityService(bookings models.BookingsRepo, catalog *models.VenueCatalog) *AvailabilityService {
	return &AvailabilityService{
		bookings: bookings,
		catalog:  catalog,
		now:      time.Now,
	}
}

// IsAvailable reports whether the venue can be booked on the given date
// (YYYY-MM-DD). Past dates are never available.
func (av *AvailabilityService) IsAvailable(ctx context.Context, venueID uuid.UUID, date string) (bool, error) {
	if _, err := av.catalog.GetByID(venueID); err != nil {
		return false, err
	}

	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return false, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", models.ErrValidation, date)
	}

	today := av.now().Format(models.DateLayout)
	if day.Format(models.DateLayout) < today {
		return false, nil
	}

	count, err := av.bookings.CountActiveBookings(ctx, venueID, day.Format(models.DateLayout))
	if err != nil {
		return false, err
	}

	return count == 0, nil
}
