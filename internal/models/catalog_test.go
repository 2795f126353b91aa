package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDefaultVenueCatalogList(t *testing.T) {
	catalog := DefaultVenueCatalog()

	venues := catalog.List()
	if len(venues) != 6 {
		t.Fatalf("List returned %d venues, want 6", len(venues))
	}

	// Listing preserves declaration order.
	wantSlugs := []string{
		"grand-ballroom",
		"seaside-terrace",
		"rustic-vineyard",
		"historic-mansion",
		"mountain-lodge",
		"urban-rooftop",
	}
	for i, slug := range wantSlugs {
		if venues[i].Slug != slug {
			t.Errorf("venues[%d].Slug = %q, want %q", i, venues[i].Slug, slug)
		}
	}
}

func TestVenueCatalogGetByID(t *testing.T) {
	catalog := DefaultVenueCatalog()
	seasideID := uuid.MustParse("5f9d1e6c-93e7-4d44-8d70-32b7a775c348")

	venue, err := catalog.GetByID(seasideID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if venue.Name != "Seaside Terrace" {
		t.Errorf("venue.Name = %q, want %q", venue.Name, "Seaside Terrace")
	}

	_, err = catalog.GetByID(uuid.New())
	if !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("GetByID(random) error = %v, want ErrVenueNotFound", err)
	}
}

func TestVenueCatalogGetBySlug(t *testing.T) {
	catalog := DefaultVenueCatalog()

	venue, err := catalog.GetBySlug("mountain-lodge")
	if err != nil {
		t.Fatalf("GetBySlug returned error: %v", err)
	}
	if venue.Name != "Mountain Lodge Retreat" {
		t.Errorf("venue.Name = %q, want %q", venue.Name, "Mountain Lodge Retreat")
	}

	_, err = catalog.GetBySlug("no-such-venue")
	if !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("GetBySlug(missing) error = %v, want ErrVenueNotFound", err)
	}
}

func TestVenueCatalogListIsACopy(t *testing.T) {
	catalog := DefaultVenueCatalog()

	first := catalog.List()
	first[0] = nil

	second := catalog.List()
	if second[0] == nil {
		t.Error("mutating a listed slice leaked into the catalog")
	}
}

func TestVenueFitsGuestCount(t *testing.T) {
	v := &Venue{CapacityMin: 1, CapacityMax: 200}

	if !v.FitsGuestCount(200) {
		t.Error("FitsGuestCount(200) = false, want true at capacity")
	}
	if v.FitsGuestCount(201) {
		t.Error("FitsGuestCount(201) = true, want false above capacity")
	}
	if v.FitsGuestCount(0) {
		t.Error("FitsGuestCount(0) = true, want false below minimum")
	}
}
