package models

import "errors"

// Sentinel errors returned by repositories and services. Handlers map
// them to HTTP status codes with errors.Is.
var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrUnauthenticated     = errors.New("not authenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrDateUnavailable     = errors.New("date unavailable")
	ErrInvalidStatus       = errors.New("invalid target status")
	ErrMalformedPriceRange = errors.New("malformed price range")
	ErrValidation          = errors.New("validation failed")
	ErrBackendUnavailable  = errors.New("backend unavailable")
)
