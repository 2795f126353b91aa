package handlers

import (
	"net/http"

	"github.com/evermore-weddings/api/internal/helpers"
	"github.com/evermore-weddings/api/internal/models"
	"github.com/evermore-weddings/api/internal/services"
	"github.com/gin-gonic/gin"
)

// sessionClaims pulls the authenticated session out of the gin context.
func sessionClaims(c *gin.Context) (*helpers.SessionClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := userClaims.(*helpers.SessionClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionClaims(c)
		if !ok {
			return
		}

		var input services.CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		booking, err := b.Create(c.Request.Context(), claims.UserUUID(), input, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking request submitted"))
	}
}

func ListMyBookings(d *services.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionClaims(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		bookings, err := d.ListForUser(c.Request.Context(), claims.UserUUID(), accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}
