package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
)

// VenuesService exposes the static catalog with the browsing filters the
// venues page offers: location filter and price sorting.
type VenuesService struct {
	catalog *models.VenueCatalog
}

func NewVenuesService(catalog *models.VenueCatalog) *VenuesService {
	return &VenuesService{
		catalog: catalog,
	}
}

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// ListVenues returns catalog venues, optionally filtered by location and
// sorted by price-range floor. With no sort the declaration order of the
// catalog is preserved.
func (vs *VenuesService) ListVenues(location, sortBy string) ([]*models.Venue, error) {
	venues := vs.catalog.List()

	if location != "" {
		filtered := venues[:0]
		for _, v := range venues {
			if strings.EqualFold(v.Location, location) {
				filtered = append(filtered, v)
			}
		}
		venues = filtered
	}

	switch sortBy {
	case "":
		// keep catalog order
	case SortPriceAsc, SortPriceDesc:
		var sortErr error
		sort.SliceStable(venues, func(i, j int) bool {
			fi, err := models.PriceRangeFloor(venues[i].PriceRange)
			if err != nil {
				sortErr = err
			}
			fj, err := models.PriceRangeFloor(venues[j].PriceRange)
			if err != nil {
				sortErr = err
			}
			if sortBy == SortPriceDesc {
				return fi > fj
			}
			return fi < fj
		})
		if sortErr != nil {
			return nil, sortErr
		}
	default:
		return nil, fmt.Errorf("%w: unsupported sort %q", models.ErrValidation, sortBy)
	}

	return venues, nil
}

func (vs *VenuesService) GetVenueByID(id uuid.UUID) (*models.Venue, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid venue ID", models.ErrValidation)
	}
	return vs.catalog.GetByID(id)
}

func (vs *VenuesService) GetVenueBySlug(slug string) (*models.Venue, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: venue slug is required", models.ErrValidation)
	}
	return vs.catalog.GetBySlug(slug)
}
