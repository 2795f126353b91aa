package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsAdmin(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()
	access := NewAccessService(newFakeRoleResolver(adminID), testLogger())

	assert.True(t, access.IsAdmin(context.Background(), adminID))
	assert.False(t, access.IsAdmin(context.Background(), userID))
}

func TestIsAdminNilIdentity(t *testing.T) {
	access := NewAccessService(newFakeRoleResolver(), testLogger())

	assert.False(t, access.IsAdmin(context.Background(), uuid.Nil))
}

func TestIsAdminFailsClosedOnLookupError(t *testing.T) {
	roles := newFakeRoleResolver(uuid.New())
	roles.err = errors.New("role backend unreachable")
	access := NewAccessService(roles, testLogger())

	assert.False(t, access.IsAdmin(context.Background(), uuid.New()),
		"a failed role lookup must deny, never grant")
}
