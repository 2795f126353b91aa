package handlers

import (
	"net/http"

	"github.com/evermore-weddings/api/internal/helpers"
	"github.com/evermore-weddings/api/internal/models"
	"github.com/evermore-weddings/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListBookings is the admin booking table: all users' bookings, newest
// first, optionally filtered by status.
func ListBookings(d *services.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.BookingStatus(c.Query("status"))
		if status != "" && status != models.BookingPending &&
			status != models.BookingConfirmed && status != models.BookingCancelled {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid status filter"))
			return
		}

		orderBy := c.DefaultQuery("order_by", "created_at")
		if orderBy != "created_at" && orderBy != "event_date" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid order_by parameter"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		bookings, err := d.List(c.Request.Context(), models.BookingFilter{
			Status:  status,
			OrderBy: orderBy,
		}, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

// UpdateBookingStatus confirms, cancels or reactivates a booking.
func UpdateBookingStatus(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionClaims(c)
		if !ok {
			return
		}

		bookingID, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		var req struct {
			Status models.BookingStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		booking, err := b.Transition(c.Request.Context(), bookingID, claims.UserUUID(), req.Status, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

// EditBooking applies a partial update to a booking's details.
func EditBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionClaims(c)
		if !ok {
			return
		}

		bookingID, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		var patch models.BookingPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		booking, err := b.Edit(c.Request.Context(), bookingID, claims.UserUUID(), patch, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking updated"))
	}
}

// ListAllEnquiries is the admin view over contact-form messages.
func ListAllEnquiries(e *services.EnquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		enquiries, err := e.ListEnquiries(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(enquiries, ""))
	}
}
