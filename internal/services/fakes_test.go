package services

import (
	"context"
	"fmt"
	"time"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
)

// fakeBookingsRepo is an in-memory stand-in for the Supabase bookings
// table, including the profiles-join enrichment via the emails map.
type fakeBookingsRepo struct {
	bookings  map[uuid.UUID]*models.Booking
	order     []uuid.UUID
	emails    map[uuid.UUID]string
	createErr error
	countErr  error
	listErr   error
	updateErr error
}

func newFakeBookingsRepo() *fakeBookingsRepo {
	return &fakeBookingsRepo{
		bookings: make(map[uuid.UUID]*models.Booking),
		emails:   make(map[uuid.UUID]string),
	}
}

func (f *fakeBookingsRepo) put(b *models.Booking) {
	cp := *b
	f.bookings[b.ID] = &cp
	f.order = append(f.order, b.ID)
}

func (f *fakeBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking, accessToken string) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	// Mirror the partial unique index on (venue_id, event_date).
	for _, b := range f.bookings {
		if b.VenueID == booking.VenueID && b.EventDate == booking.EventDate && b.Status != models.BookingCancelled {
			return nil, fmt.Errorf("%w: venue %s on %s", models.ErrDateUnavailable, booking.VenueID, booking.EventDate)
		}
	}
	f.put(booking)
	cp := *booking
	return &cp, nil
}

func (f *fakeBookingsRepo) GetBookingByID(ctx context.Context, id uuid.UUID, accessToken string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrBookingNotFound, id)
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingsRepo) ListBookings(ctx context.Context, filter models.BookingFilter, accessToken string) ([]*models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Booking
	for _, id := range f.order {
		b := f.bookings[id]
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.UserID != uuid.Nil && b.UserID != filter.UserID {
			continue
		}
		cp := *b
		cp.UserEmail = f.emails[b.UserID]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeBookingsRepo) CountActiveBookings(ctx context.Context, venueID uuid.UUID, eventDate string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, b := range f.bookings {
		if b.VenueID == venueID && b.EventDate == eventDate &&
			(b.Status == models.BookingPending || b.Status == models.BookingConfirmed) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingsRepo) UpdateBooking(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*models.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrBookingNotFound, id)
	}
	for key, value := range fields {
		switch key {
		case "status":
			b.Status = value.(models.BookingStatus)
		case "event_date":
			b.EventDate = value.(string)
		case "start_time":
			b.StartTime = value.(string)
		case "end_time":
			b.EndTime = value.(string)
		case "guest_count":
			b.GuestCount = value.(int)
		case "updated_at":
			b.UpdatedAt = value.(time.Time)
		}
	}
	cp := *b
	return &cp, nil
}

// fakeRoleResolver answers role lookups from a map, or fails outright.
type fakeRoleResolver struct {
	admins map[uuid.UUID]bool
	err    error
}

func newFakeRoleResolver(admins ...uuid.UUID) *fakeRoleResolver {
	f := &fakeRoleResolver{admins: make(map[uuid.UUID]bool)}
	for _, id := range admins {
		f.admins[id] = true
	}
	return f
}

func (f *fakeRoleResolver) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if role != models.RoleAdmin {
		return false, nil
	}
	return f.admins[userID], nil
}
