package handlers

import (
	"net/http"

	"github.com/evermore-weddings/api/internal/helpers"
	"github.com/evermore-weddings/api/internal/models"
	"github.com/evermore-weddings/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Query("location")
		sortBy := c.Query("sort")

		venues, err := v.ListVenues(location, sortBy)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venues, ""))
	}
}

func GetVenueByID(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID := helpers.StringTrim(c.Param("id"))
		if venueID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("venue ID is required"))
			return
		}

		parsedId, err := uuid.Parse(venueID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid venue ID format"))
			return
		}

		venue, err := v.GetVenueByID(parsedId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func GetVenueBySlug(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := helpers.StringTrim(c.Param("slug"))
		if slug == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("venue slug is required"))
			return
		}

		venue, err := v.GetVenueBySlug(slug)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

// CheckAvailability answers the "is my date free" widget on the home
// page: GET /venues/:id/availability?date=YYYY-MM-DD.
func CheckAvailability(av *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID := helpers.StringTrim(c.Param("id"))
		parsedId, err := uuid.Parse(venueID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid venue ID format"))
			return
		}

		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("date query parameter is required"))
			return
		}

		available, err := av.IsAvailable(c.Request.Context(), parsedId, date)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"venue_id":  parsedId,
			"date":      date,
			"available": available,
		}, ""))
	}
}
