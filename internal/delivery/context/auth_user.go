package context

import (
	"context"

	"storefront/internal/domain/entity"
)

// GetAuthUser extracts the authenticated user from context.Context.
// Returns nil when the request carries no valid session.
func GetAuthUser(ctx context.Context) *entity.AuthUser {
	if user, ok := ctx.Value(KeyAuthUser).(*entity.AuthUser); ok {
		return user
	}

	return nil
}

// WithAuthUser returns a new context carrying the authenticated user.
func WithAuthUser(ctx context.Context, user *entity.AuthUser) context.Context {
	return context.WithValue(ctx, KeyAuthUser, user)
}
