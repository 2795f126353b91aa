package handlers

import (
	"errors"
	"net/http"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError maps sentinel errors onto HTTP status codes and writes
// the standard error envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrVenueNotFound), errors.Is(err, models.ErrBookingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrDateUnavailable):
		status = http.StatusConflict
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrMalformedPriceRange):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrBackendUnavailable):
		status = http.StatusBadGateway
	}

	c.JSON(status, models.ErrorResponse(err.Error()))
}
