package utils

import (
	"context"

	"github.com/google/uuid"
)

// Context keys populated by the auth middleware
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// GetUserIDFromContext extracts the authenticated user id set by the auth
// middleware. ok is false for anonymous requests.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextUserID).(uuid.UUID)
	return id, ok
}

// GetEmailFromContext extracts the authenticated user's email
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextEmail).(string)
	return email, ok
}
