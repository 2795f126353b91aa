package services

import (
	"context"
	"testing"
	"time"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	repo    *fakeBookingsRepo
	roles   *fakeRoleResolver
	service *BookingService
	adminID uuid.UUID
	userID  uuid.UUID
}

func newBookingFixture() *bookingFixture {
	repo := newFakeBookingsRepo()
	adminID := uuid.New()
	roles := newFakeRoleResolver(adminID)
	catalog := models.DefaultVenueCatalog()
	logger := testLogger()

	availability := NewAvailabilityService(repo, catalog)
	access := NewAccessService(roles, logger)

	return &bookingFixture{
		repo:    repo,
		roles:   roles,
		service: NewBookingService(repo, catalog, availability, access, logger),
		adminID: adminID,
		userID:  uuid.New(),
	}
}

// futureDate keeps create tests independent of the wall clock.
func futureDate(monthsAhead int) string {
	return time.Now().AddDate(0, monthsAhead, 0).Format(models.DateLayout)
}

func TestCreateBookingQuotesSeasideTerrace(t *testing.T) {
	f := newBookingFixture()

	booking, err := f.service.Create(context.Background(), f.userID, CreateBookingInput{
		VenueID:    seasideID,
		EventDate:  futureDate(2),
		StartTime:  "14:00",
		EndTime:    "20:00",
		GuestCount: 120,
	}, "token")
	require.NoError(t, err)

	// $6,000 floor -> $60/hour -> $360 for the six hour default
	assert.Equal(t, 360.0, booking.TotalPrice)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, f.userID, booking.UserID)
	assert.NotEqual(t, uuid.Nil, booking.ID)
}

func TestCreateBookingBlocksTheDate(t *testing.T) {
	f := newBookingFixture()
	date := futureDate(2)
	input := CreateBookingInput{
		VenueID:    seasideID,
		EventDate:  date,
		StartTime:  "14:00",
		EndTime:    "20:00",
		GuestCount: 50,
	}

	_, err := f.service.Create(context.Background(), f.userID, input, "token")
	require.NoError(t, err)

	// The pending booking already blocks a second request for the date.
	_, err = f.service.Create(context.Background(), uuid.New(), input, "token")
	assert.ErrorIs(t, err, models.ErrDateUnavailable)
}

func TestCreateBookingRequiresIdentity(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.Create(context.Background(), uuid.Nil, CreateBookingInput{
		VenueID:    seasideID,
		EventDate:  futureDate(1),
		StartTime:  "14:00",
		EndTime:    "20:00",
		GuestCount: 50,
	}, "token")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	assert.Empty(t, f.repo.bookings, "nothing should be persisted")
}

func TestCreateBookingUnknownVenue(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.Create(context.Background(), f.userID, CreateBookingInput{
		VenueID:    uuid.New(),
		EventDate:  futureDate(1),
		StartTime:  "14:00",
		EndTime:    "20:00",
		GuestCount: 50,
	}, "token")
	assert.ErrorIs(t, err, models.ErrVenueNotFound)
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	f := newBookingFixture()

	tests := []struct {
		name  string
		input CreateBookingInput
	}{
		{"zero guests", CreateBookingInput{
			VenueID: seasideID, EventDate: futureDate(1),
			StartTime: "14:00", EndTime: "20:00", GuestCount: 0,
		}},
		{"missing times", CreateBookingInput{
			VenueID: seasideID, EventDate: futureDate(1), GuestCount: 50,
		}},
		{"bad start time", CreateBookingInput{
			VenueID: seasideID, EventDate: futureDate(1),
			StartTime: "2pm", EndTime: "20:00", GuestCount: 50,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Create(context.Background(), f.userID, tt.input, "token")
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCreateBookingPastDate(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.Create(context.Background(), f.userID, CreateBookingInput{
		VenueID:    seasideID,
		EventDate:  "2020-06-01",
		StartTime:  "14:00",
		EndTime:    "20:00",
		GuestCount: 50,
	}, "token")
	assert.ErrorIs(t, err, models.ErrDateUnavailable)
}

func TestCreateBookingOversizedPartyIsAccepted(t *testing.T) {
	f := newBookingFixture()

	// Seaside Terrace caps at 200; the request is flagged but not refused.
	booking, err := f.service.Create(context.Background(), f.userID, CreateBookingInput{
		VenueID:    seasideID,
		EventDate:  futureDate(2),
		StartTime:  "14:00",
		EndTime:    "20:00",
		GuestCount: 350,
	}, "token")
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
}

func TestTransitionNonAdminForbidden(t *testing.T) {
	f := newBookingFixture()
	booking := &models.Booking{
		ID:      uuid.New(),
		UserID:  f.userID,
		VenueID: seasideID,
		Status:  models.BookingPending,
	}
	f.repo.put(booking)

	_, err := f.service.Transition(context.Background(), booking.ID, f.userID, models.BookingConfirmed, "token")
	assert.ErrorIs(t, err, models.ErrForbidden)

	stored, err := f.repo.GetBookingByID(context.Background(), booking.ID, "token")
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status, "denied transition must not mutate the booking")
}

func TestTransitionConfirmAndCancel(t *testing.T) {
	f := newBookingFixture()
	booking := &models.Booking{
		ID:      uuid.New(),
		UserID:  f.userID,
		VenueID: seasideID,
		Status:  models.BookingPending,
	}
	f.repo.put(booking)

	updated, err := f.service.Transition(context.Background(), booking.ID, f.adminID, models.BookingConfirmed, "token")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	updated, err = f.service.Transition(context.Background(), booking.ID, f.adminID, models.BookingCancelled, "token")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
}

func TestTransitionReactivation(t *testing.T) {
	f := newBookingFixture()
	booking := &models.Booking{
		ID:         uuid.New(),
		UserID:     f.userID,
		VenueID:    seasideID,
		EventDate:  "2027-03-20",
		StartTime:  "15:00",
		EndTime:    "21:00",
		GuestCount: 90,
		TotalPrice: 360,
		Status:     models.BookingCancelled,
	}
	f.repo.put(booking)

	updated, err := f.service.Transition(context.Background(), booking.ID, f.adminID, models.BookingConfirmed, "token")
	require.NoError(t, err)

	assert.Equal(t, models.BookingConfirmed, updated.Status)
	// Reactivation restores status only; everything else survives intact.
	assert.Equal(t, booking.EventDate, updated.EventDate)
	assert.Equal(t, booking.GuestCount, updated.GuestCount)
	assert.Equal(t, booking.TotalPrice, updated.TotalPrice)
}

func TestTransitionRejectsPendingTarget(t *testing.T) {
	f := newBookingFixture()
	booking := &models.Booking{ID: uuid.New(), VenueID: seasideID, Status: models.BookingConfirmed}
	f.repo.put(booking)

	_, err := f.service.Transition(context.Background(), booking.ID, f.adminID, models.BookingPending, "token")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestTransitionBookingNotFound(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.Transition(context.Background(), uuid.New(), f.adminID, models.BookingConfirmed, "token")
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestEditPartialPatch(t *testing.T) {
	f := newBookingFixture()
	booking := &models.Booking{
		ID:         uuid.New(),
		UserID:     f.userID,
		VenueID:    seasideID,
		EventDate:  "2027-03-20",
		StartTime:  "15:00",
		EndTime:    "21:00",
		GuestCount: 90,
		TotalPrice: 360,
		Status:     models.BookingPending,
	}
	f.repo.put(booking)

	guests := 140
	updated, err := f.service.Edit(context.Background(), booking.ID, f.adminID, models.BookingPatch{
		GuestCount: &guests,
	}, "token")
	require.NoError(t, err)

	assert.Equal(t, 140, updated.GuestCount)
	assert.Equal(t, booking.EventDate, updated.EventDate)
	assert.Equal(t, booking.StartTime, updated.StartTime)
	assert.Equal(t, booking.Status, updated.Status)
	// The quote is fixed at creation; edits never reprice.
	assert.Equal(t, booking.TotalPrice, updated.TotalPrice)
}

func TestEditRequiresAdmin(t *testing.T) {
	f := newBookingFixture()
	booking := &models.Booking{ID: uuid.New(), UserID: f.userID, VenueID: seasideID, Status: models.BookingPending}
	f.repo.put(booking)

	guests := 10
	_, err := f.service.Edit(context.Background(), booking.ID, f.userID, models.BookingPatch{GuestCount: &guests}, "token")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestEditEmptyPatch(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.Edit(context.Background(), uuid.New(), f.adminID, models.BookingPatch{}, "token")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestEditValidatesFields(t *testing.T) {
	f := newBookingFixture()
	booking := &models.Booking{ID: uuid.New(), VenueID: seasideID, Status: models.BookingPending}
	f.repo.put(booking)

	badDate := "20-03-2027"
	_, err := f.service.Edit(context.Background(), booking.ID, f.adminID, models.BookingPatch{EventDate: &badDate}, "token")
	assert.ErrorIs(t, err, models.ErrValidation)

	badGuests := -5
	_, err = f.service.Edit(context.Background(), booking.ID, f.adminID, models.BookingPatch{GuestCount: &badGuests}, "token")
	assert.ErrorIs(t, err, models.ErrValidation)

	badStatus := models.BookingPending
	_, err = f.service.Edit(context.Background(), booking.ID, f.adminID, models.BookingPatch{Status: &badStatus}, "token")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}
