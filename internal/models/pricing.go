package models

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultEventDurationHours is assumed when a booking request does not
// specify how long the event runs.
const DefaultEventDurationHours = 6

// PriceRangeFloor extracts the lower bound from a display price range
// such as "$6,000 - $12,000".
func PriceRangeFloor(priceRange string) (float64, error) {
	low := priceRange
	if i := strings.IndexAny(priceRange, "-–"); i >= 0 {
		low = priceRange[:i]
	}

	var digits strings.Builder
	for _, r := range low {
		if r >= '0' && r <= '9' || r == '.' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPriceRange, priceRange)
	}

	floor, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPriceRange, priceRange)
	}
	return floor, nil
}

// HourlyRate derives an hourly rate from the venue's price-range floor.
// The floor/100 heuristic is carried over from the original quote logic
// and is kept for parity with prices already stored on bookings.
func HourlyRate(v *Venue) (float64, error) {
	floor, err := PriceRangeFloor(v.PriceRange)
	if err != nil {
		return 0, err
	}
	return floor / 100, nil
}

// ComputeTotal quotes a booking total for the given event duration.
// Pure function: the same venue and duration always yield the same total.
func ComputeTotal(v *Venue, durationHours int) (float64, error) {
	if durationHours <= 0 {
		durationHours = DefaultEventDurationHours
	}
	rate, err := HourlyRate(v)
	if err != nil {
		return 0, err
	}
	return rate * float64(durationHours), nil
}
