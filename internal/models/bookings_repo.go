package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking, accessToken string) (*Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID, accessToken string) (*Booking, error)
	ListBookings(ctx context.Context, filter BookingFilter, accessToken string) ([]*Booking, error)
	CountActiveBookings(ctx context.Context, venueID uuid.UUID, eventDate string) (int, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*Booking, error)
}

// bookingRow is the wire shape PostgREST returns, with the optional
// embedded profiles row from the user_id join.
type bookingRow struct {
	Booking
	Profiles *struct {
		Email string `json:"email"`
	} `json:"profiles"`
}

func (r *bookingRow) toBooking() *Booking {
	b := r.Booking
	if r.Profiles != nil {
		b.UserEmail = r.Profiles.Email
	}
	return &b
}

func (su *SupabaseRepo) CreateBooking(ctx context.Context, booking *Booking, accessToken string) (*Booking, error) {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	bookingData := map[string]interface{}{
		"id":          booking.ID,
		"user_id":     booking.UserID,
		"venue_id":    booking.VenueID,
		"event_date":  booking.EventDate,
		"start_time":  booking.StartTime,
		"end_time":    booking.EndTime,
		"guest_count": booking.GuestCount,
		"total_price": booking.TotalPrice,
		"status":      booking.Status,
		"created_at":  booking.CreatedAt,
		"updated_at":  booking.UpdatedAt,
	}

	data, count, err := client.
		From(BookingsTable).
		Insert(bookingData, false, "", "representation", "exact").
		Execute()
	if err != nil {
		// The bookings table carries a partial unique index on
		// (venue_id, event_date) for non-cancelled rows, so a lost
		// availability race surfaces here as a conflict.
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "23505") {
			return nil, fmt.Errorf("%w: venue %s on %s", ErrDateUnavailable, booking.VenueID, booking.EventDate)
		}
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrBackendUnavailable, err)
	}

	var created []bookingRow
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created booking: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no booking data returned after insert")
	}

	return created[0].toBooking(), nil
}

func (su *SupabaseRepo) GetBookingByID(ctx context.Context, id uuid.UUID, accessToken string) (*Booking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid booking ID", ErrValidation)
	}

	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(BookingsTable).
		Select("*, profiles:user_id(email)", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrBackendUnavailable, err)
	}

	var rows []bookingRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}

	return rows[0].toBooking(), nil
}

func (su *SupabaseRepo) ListBookings(ctx context.Context, filter BookingFilter, accessToken string) ([]*Booking, error) {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	query := client.From(BookingsTable).
		Select("*, profiles:user_id(email)", "exact", false)

	if filter.Status != "" {
		query = query.Eq("status", string(filter.Status))
	}
	if filter.UserID != uuid.Nil {
		query = query.Eq("user_id", filter.UserID.String())
	}

	switch filter.OrderBy {
	case "event_date":
		query = query.Order("event_date", &postgrest.OrderOpts{Ascending: true})
	default:
		// Admin view default: newest requests first.
		query = query.Order("created_at", &postgrest.OrderOpts{Ascending: false})
	}

	data, count, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrBackendUnavailable, err)
	}
	if count == 0 {
		return []*Booking{}, nil
	}

	var rows []bookingRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}

	bookings := make([]*Booking, 0, len(rows))
	for i := range rows {
		bookings = append(bookings, rows[i].toBooking())
	}
	return bookings, nil
}

// CountActiveBookings counts pending or confirmed bookings for a venue
// on a calendar date. Cancelled bookings do not block the date.
func (su *SupabaseRepo) CountActiveBookings(ctx context.Context, venueID uuid.UUID, eventDate string) (int, error) {
	_, count, err := su.supabaseClient.From(BookingsTable).
		Select("id", "exact", false).
		Eq("venue_id", venueID.String()).
		Eq("event_date", eventDate).
		In("status", []string{string(BookingPending), string(BookingConfirmed)}).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count bookings: %v", ErrBackendUnavailable, err)
	}
	return int(count), nil
}

func (su *SupabaseRepo) UpdateBooking(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*Booking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid booking ID", ErrValidation)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	data, count, err := client.From(BookingsTable).
		Update(fields, "representation", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update booking: %v", ErrBackendUnavailable, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}

	var rows []bookingRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated booking: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}

	return rows[0].toBooking(), nil
}
