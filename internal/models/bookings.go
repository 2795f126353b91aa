package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidTransitionTarget reports whether a status may be set by an admin
// transition. Bookings enter "pending" only at creation; confirmed and
// cancelled may flip back and forth (cancelling a confirmed booking,
// reactivating a cancelled one).
func ValidTransitionTarget(s BookingStatus) bool {
	return s == BookingConfirmed || s == BookingCancelled
}

const (
	// DateLayout is the wire format for event dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for event start/end times.
	TimeLayout = "15:04"
)

type Booking struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	UserID     uuid.UUID     `db:"user_id" json:"user_id"`
	VenueID    uuid.UUID     `db:"venue_id" json:"venue_id"`
	EventDate  string        `db:"event_date" json:"event_date"` // YYYY-MM-DD
	StartTime  string        `db:"start_time" json:"start_time"` // HH:MM
	EndTime    string        `db:"end_time" json:"end_time"`     // HH:MM
	GuestCount int           `db:"guest_count" json:"guest_count"`
	TotalPrice float64       `db:"total_price" json:"total_price"`
	Status     BookingStatus `db:"status" json:"status"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updated_at"`

	// Display fields filled in by the directory listing, not persisted.
	UserEmail string `db:"-" json:"user_email,omitempty"`
	VenueName string `db:"-" json:"venue_name,omitempty"`
}

// BookingFilter narrows a directory listing.
type BookingFilter struct {
	Status BookingStatus // empty = all statuses
	UserID uuid.UUID     // uuid.Nil = all users
	// OrderBy is "created_at" (default, newest first) or "event_date".
	OrderBy string
}

// BookingPatch carries an admin edit. Nil fields are left untouched.
// Changing the date or guest count deliberately does not re-run the
// availability check or recompute the total.
type BookingPatch struct {
	EventDate  *string        `json:"event_date,omitempty"`
	StartTime  *string        `json:"start_time,omitempty"`
	EndTime    *string        `json:"end_time,omitempty"`
	GuestCount *int           `json:"guest_count,omitempty"`
	Status     *BookingStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p BookingPatch) IsEmpty() bool {
	return p.EventDate == nil && p.StartTime == nil && p.EndTime == nil &&
		p.GuestCount == nil && p.Status == nil
}
