package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

type UserRepo interface {
	SignUp(ctx context.Context, email, password string) (interface{}, error)
	SignIn(ctx context.Context, email, password string) (interface{}, error)
	RefreshToken(ctx context.Context, refreshToken string) (interface{}, error)
	GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error)
}

func (su *SupabaseRepo) SignUp(ctx context.Context, email, password string) (interface{}, error) {
	signed := types.SignupRequest{
		Email:    email,
		Password: password,
	}

	res, err := su.supabaseClient.Auth.Signup(signed)
	if err != nil {
		if strings.Contains(err.Error(), "User already Registered") {
			return nil, fmt.Errorf("email already in use")
		}
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, fmt.Errorf("user already exists")
		}
		return nil, fmt.Errorf("failed to create account")
	}
	return res, nil
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrValidation)
	}

	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	raw, status, err := client.From(ProfileTable).
		Select("id,email,full_name,phone,created_at,updated_at", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("%w: postgrest error: status=%d body=%s err=%v", ErrBackendUnavailable, status, string(raw), err)
		}
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrBackendUnavailable, err)
	}

	// Supabase returns an array even for single results.
	var profiles []Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile rows: %v", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("profile not found for %s", id)
	}

	return &profiles[0], nil
}
