package container

import (
	"log/slog"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/evermore-weddings/api/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	UserService         *services.UserService
	VenueService        *services.VenuesService
	AvailabilityService *services.AvailabilityService
	AccessService       *services.AccessService
	BookingService      *services.BookingService
	DirectoryService    *services.DirectoryService
	EnquiryService      *services.EnquiryService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongo := models.MongodbNewRepo(mongoDBClient)
	catalog := models.DefaultVenueCatalog()

	userService := services.NewUserService(supa)
	venueService := services.NewVenuesService(catalog)
	availabilityService := services.NewAvailabilityService(supa, catalog)
	accessService := services.NewAccessService(supa, logger)
	bookingService := services.NewBookingService(supa, catalog, availabilityService, accessService, logger)
	directoryService := services.NewDirectoryService(supa, catalog)
	enquiryService := services.NewEnquiryService(mongo, catalog)

	return &Container{
		Logger:              logger,
		SupabaseClient:      supabaseClient,
		MongoDBClient:       mongoDBClient,
		UserService:         userService,
		VenueService:        venueService,
		AvailabilityService: availabilityService,
		AccessService:       accessService,
		BookingService:      bookingService,
		DirectoryService:    directoryService,
		EnquiryService:      enquiryService,
	}
}
