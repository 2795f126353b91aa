package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RoleResolver answers whether a user holds a role. Implemented against
// the user_roles table; services decide what an error means.
type RoleResolver interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

// HasRole checks the user_roles table for a (user, role) row. The
// database also exposes a has_role() function for policies; querying the
// table directly lets the caller see backend failures, which the access
// layer needs in order to fail closed instead of guessing.
func (su *SupabaseRepo) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}

	_, count, err := su.supabaseClient.From(UserRolesTable).
		Select("id", "exact", false).
		Eq("user_id", userID.String()).
		Eq("role", role).
		Execute()
	if err != nil {
		return false, fmt.Errorf("%w: role lookup failed: %v", ErrBackendUnavailable, err)
	}

	return count > 0, nil
}
