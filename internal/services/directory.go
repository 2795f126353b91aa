package services

import (
	"context"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
)

// DirectoryService is the read side of bookings: listings enriched with
// the requester's email (profiles join done in the repo) and the venue's
// display name from the catalog.
type DirectoryService struct {
	bookings models.BookingsRepo
	catalog  *models.VenueCatalog
}

func NewDirectoryService(bookings models.BookingsRepo, catalog *models.VenueCatalog) *DirectoryService {
	return &DirectoryService{
		bookings: bookings,
		catalog:  catalog,
	}
}

// List returns bookings matching the filter, newest first unless the
// filter orders by event date.
func (ds *DirectoryService) List(ctx context.Context, filter models.BookingFilter, accessToken string) ([]*models.Booking, error) {
	bookings, err := ds.bookings.ListBookings(ctx, filter, accessToken)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if venue, err := ds.catalog.GetByID(b.VenueID); err == nil {
			b.VenueName = venue.Name
		} else {
			b.VenueName = "Unknown Venue"
		}
		if b.UserEmail == "" {
			b.UserEmail = "Unknown"
		}
	}

	return bookings, nil
}

// ListForUser returns the requester's own bookings, soonest event first.
func (ds *DirectoryService) ListForUser(ctx context.Context, userID uuid.UUID, accessToken string) ([]*models.Booking, error) {
	return ds.List(ctx, models.BookingFilter{
		UserID:  userID,
		OrderBy: "event_date",
	}, accessToken)
}
