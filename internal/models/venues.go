package models

import (
	"github.com/google/uuid"
)

// Venue is a catalog record for a bookable wedding location. The catalog
// ships with the deployment and is read-only at runtime; bookings
// reference venues by UUID.
type Venue struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	PriceRange    string    `json:"price_range"` // e.g. "$5,000 - $10,000"
	CapacityMin   int       `json:"capacity_min"`
	CapacityMax   int       `json:"capacity_max"`
	Location      string    `json:"location"`
	Rating        float64   `json:"rating"`
	FeaturedImage string    `json:"featured_image"`
	Gallery       []string  `json:"gallery,omitempty"`
	Amenities     []string  `json:"amenities,omitempty"`
}

// FitsGuestCount reports whether a party size falls inside the venue's
// capacity bounds. Advisory only; creation is not rejected on capacity.
func (v *Venue) FitsGuestCount(guests int) bool {
	return guests >= v.CapacityMin && guests <= v.CapacityMax
}
