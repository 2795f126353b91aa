package services

import (
	"context"
	"log/slog"

	"github.com/evermore-weddings/api/internal/models"
	"github.com/google/uuid"
)

// AccessService resolves whether an identity holds the admin role.
type AccessService struct {
	roles  models.RoleResolver
	logger *slog.Logger
}

func NewAccessService(roles models.RoleResolver, logger *slog.Logger) *AccessService {
	return &AccessService{
		roles:  roles,
		logger: logger,
	}
}

// IsAdmin reports whether the user holds the admin role. Fails closed:
// a missing identity or a backend error resolves to false so that a
// transient lookup failure can never grant admin access.
func (as *AccessService) IsAdmin(ctx context.Context, userID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}

	ok, err := as.roles.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		as.logger.Warn("admin role lookup failed, denying access",
			"user_id", userID,
			"error", err,
		)
		return false
	}

	return ok
}
