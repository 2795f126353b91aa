package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
)

// BookingService owns the booking lifecycle: visitors create pending
// requests, admins confirm, cancel, reactivate or edit them.
type BookingService struct {
	bookings     models.BookingsRepo
	catalog      *models.VenueCatalog
	availability *AvailabilityService
	access       *AccessService
	logger       *slog.Logger
}

func NewBookingService(
	bookings models.BookingsRepo,
	catalog *models.VenueCatalog,
	availability *AvailabilityService,
	access *AccessService,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		catalog:      catalog,
		availability: availability,
		access:       access,
		logger:       logger,
	}
}

type CreateBookingInput struct {
	VenueID    uuid.UUID `json:"venue_id" validate:"required"`
	EventDate  string    `json:"event_date" validate:"required"`
	StartTime  string    `json:"start_time" validate:"required"`
	EndTime    string    `json:"end_time" validate:"required"`
	GuestCount int       `json:"guest_count" validate:"required,min=1"`
}

// Create validates a booking request and persists it in pending state.
// The quote uses the default event duration; it is fixed at creation
// and never recomputed.
func (bs *BookingService) Create(ctx context.Context, requesterID uuid.UUID, input CreateBookingInput, accessToken string) (*models.Booking, error) {
	if requesterID == uuid.Nil {
		return nil, fmt.Errorf("%w: booking requires a signed-in user", models.ErrUnauthenticated)
	}

	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if _, err := time.Parse(models.TimeLayout, input.StartTime); err != nil {
		return nil, fmt.Errorf("%w: invalid start_time %q, expected HH:MM", models.ErrValidation, input.StartTime)
	}
	if _, err := time.Parse(models.TimeLayout, input.EndTime); err != nil {
		return nil, fmt.Errorf("%w: invalid end_time %q, expected HH:MM", models.ErrValidation, input.EndTime)
	}

	venue, err := bs.catalog.GetByID(input.VenueID)
	if err != nil {
		return nil, err
	}

	available, err := bs.availability.IsAvailable(ctx, input.VenueID, input.EventDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("%w: %s on %s", models.ErrDateUnavailable, venue.Name, input.EventDate)
	}

	// Capacity is advisory: flag oversized parties for the admin review
	// but do not reject, matching how requests were always accepted.
	if !venue.FitsGuestCount(input.GuestCount) {
		bs.logger.Warn("guest count outside venue capacity",
			"venue", venue.Slug,
			"guest_count", input.GuestCount,
			"capacity_max", venue.CapacityMax,
		)
	}

	total, err := models.ComputeTotal(venue, models.DefaultEventDurationHours)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:         uuid.New(),
		UserID:     requesterID,
		VenueID:    input.VenueID,
		EventDate:  input.EventDate,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		GuestCount: input.GuestCount,
		TotalPrice: total,
		Status:     models.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := bs.bookings.CreateBooking(ctx, booking, accessToken)
	if err != nil {
		return nil, err
	}

	bs.logger.Info("booking created",
		"booking_id", created.ID,
		"venue", venue.Slug,
		"event_date", created.EventDate,
		"total_price", created.TotalPrice,
	)
	return created, nil
}

// Transition moves a booking to confirmed or cancelled. Admin only; the
// status is the only field that changes. There is no path back to
// pending once a booking has left it.
func (bs *BookingService) Transition(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, target models.BookingStatus, accessToken string) (*models.Booking, error) {
	if !bs.access.IsAdmin(ctx, actorID) {
		return nil, fmt.Errorf("%w: only admins can change booking status", models.ErrForbidden)
	}
	if !models.ValidTransitionTarget(target) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, target)
	}

	updated, err := bs.bookings.UpdateBooking(ctx, bookingID, map[string]interface{}{
		"status":     target,
		"updated_at": time.Now(),
	}, accessToken)
	if err != nil {
		return nil, err
	}

	bs.logger.Info("booking status changed",
		"booking_id", bookingID,
		"status", target,
		"actor_id", actorID,
	)
	return updated, nil
}

// Edit applies a partial admin update. Unset fields keep their prior
// values. A changed date is not re-checked against other bookings and a
// changed guest count does not recompute the total; both mirror the
// original admin tooling.
func (bs *BookingService) Edit(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, patch models.BookingPatch, accessToken string) (*models.Booking, error) {
	if !bs.access.IsAdmin(ctx, actorID) {
		return nil, fmt.Errorf("%w: only admins can edit bookings", models.ErrForbidden)
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", models.ErrValidation)
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.EventDate != nil {
		if _, err := time.Parse(models.DateLayout, *patch.EventDate); err != nil {
			return nil, fmt.Errorf("%w: invalid event_date %q", models.ErrValidation, *patch.EventDate)
		}
		fields["event_date"] = *patch.EventDate
	}
	if patch.StartTime != nil {
		if _, err := time.Parse(models.TimeLayout, *patch.StartTime); err != nil {
			return nil, fmt.Errorf("%w: invalid start_time %q", models.ErrValidation, *patch.StartTime)
		}
		fields["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		if _, err := time.Parse(models.TimeLayout, *patch.EndTime); err != nil {
			return nil, fmt.Errorf("%w: invalid end_time %q", models.ErrValidation, *patch.EndTime)
		}
		fields["end_time"] = *patch.EndTime
	}
	if patch.GuestCount != nil {
		if *patch.GuestCount < 1 {
			return nil, fmt.Errorf("%w: guest_count must be positive", models.ErrValidation)
		}
		fields["guest_count"] = *patch.GuestCount
	}
	if patch.Status != nil {
		if !models.ValidTransitionTarget(*patch.Status) {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, *patch.Status)
		}
		fields["status"] = *patch.Status
	}

	return bs.bookings.UpdateBooking(ctx, bookingID, fields, accessToken)
}
