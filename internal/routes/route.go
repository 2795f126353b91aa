package routes

import (
	"github.com/evermore-weddings/api/internal/container"
	"github.com/evermore-weddings/api/internal/handlers"
	"github.com/evermore-weddings/api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "evermore-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.SignUp(container.UserService))
		v1.POST("/login", handlers.AuthenticateUser(container.UserService))

		// the venue catalog and the date checker are public
		v1.GET("/venues", handlers.ListVenues(container.VenueService))
		v1.GET("/venues/slug/:slug", handlers.GetVenueBySlug(container.VenueService))
		v1.GET("/venues/:id", handlers.GetVenueByID(container.VenueService))
		v1.GET("/venues/:id/availability", handlers.CheckAvailability(container.AvailabilityService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))
	{
		protected.GET("/profile", handlers.Profile(container.UserService, container.AccessService))
		protected.POST("/logout", handlers.Logout())

		protected.POST("/bookings", handlers.CreateBooking(container.BookingService))
		protected.GET("/bookings", handlers.ListMyBookings(container.DirectoryService))

		protected.POST("/enquiries", handlers.SubmitEnquiry(container.EnquiryService))
		protected.GET("/enquiries", handlers.ListMyEnquiries(container.EnquiryService))
	}

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(middleware.RequireAdmin(container.AccessService))
	{
		adminRoutes.GET("/bookings", handlers.ListBookings(container.DirectoryService))
		adminRoutes.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus(container.BookingService))
		adminRoutes.PATCH("/bookings/:id", handlers.EditBooking(container.BookingService))
		adminRoutes.GET("/enquiries", handlers.ListAllEnquiries(container.EnquiryService))
	}

	return r
}
