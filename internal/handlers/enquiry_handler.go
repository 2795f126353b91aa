package handlers

import (
	"net/http"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/evermore-weddings/api/internal/services"
	"github.com/gin-gonic/gin"
)

func SubmitEnquiry(e *services.EnquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionClaims(c)
		if !ok {
			return
		}

		var enquiry models.Enquiry
		if err := c.ShouldBindJSON(&enquiry); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := e.SubmitEnquiry(c.Request.Context(), claims.UserUUID(), &enquiry)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Enquiry submitted"))
	}
}

func ListMyEnquiries(e *services.EnquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionClaims(c)
		if !ok {
			return
		}

		enquiries, err := e.ListEnquiriesByUser(c.Request.Context(), claims.UserUUID())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(enquiries, ""))
	}
}
