package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
)

type EnquiryService struct {
	enquiriesRepo models.EnquiryRepo
	catalog       *models.VenueCatalog
}

func NewEnquiryService(enquiriesRepo models.EnquiryRepo, catalog *models.VenueCatalog) *EnquiryService {
	return &EnquiryService{
		enquiriesRepo: enquiriesRepo,
		catalog:       catalog,
	}
}

func (es *EnquiryService) SubmitEnquiry(ctx context.Context, userId uuid.UUID, enquiry *models.Enquiry) (*models.Enquiry, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("%w: enquiry requires a signed-in user", models.ErrUnauthenticated)
	}
	if strings.TrimSpace(enquiry.Message) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", models.ErrValidation)
	}
	if enquiry.VenueID != "" {
		venueId, err := uuid.Parse(enquiry.VenueID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid venue ID", models.ErrValidation)
		}
		if _, err := es.catalog.GetByID(venueId); err != nil {
			return nil, err
		}
	}

	enquiry.UserID = userId
	return es.enquiriesRepo.SubmitEnquiry(ctx, enquiry)
}

func (es *EnquiryService) ListEnquiriesByUser(ctx context.Context, userId uuid.UUID) ([]*models.Enquiry, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid user ID", models.ErrValidation)
	}
	return es.enquiriesRepo.ListEnquiriesByUser(ctx, userId)
}

func (es *EnquiryService) ListEnquiries(ctx context.Context) ([]*models.Enquiry, error) {
	return es.enquiriesRepo.ListEnquiries(ctx)
}
