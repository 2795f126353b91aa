package helpers

import "github.com/google/uuid"

// SessionClaims is what the auth middleware stores in the request
// context: the validated identity, nothing more. Whether the user is an
// admin is resolved per-operation against the user_roles table, never
// from the token.
type SessionClaims struct {
	*CustomClaims
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
}

// UserUUID parses the subject into a UUID; uuid.Nil when absent or
// malformed, which downstream checks treat as unauthenticated.
func (sc *SessionClaims) UserUUID() uuid.UUID {
	id, err := uuid.Parse(sc.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
