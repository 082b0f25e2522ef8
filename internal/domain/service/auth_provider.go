// Package service defines interfaces for domain services whose concrete
// implementations live in the infra layer.
package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for the hosted auth surface.
var (
	// ErrInvalidCredentials is returned when the backend rejects the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when sign-up hits an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// AuthProvider is the hosted backend's email/password auth surface. The
// storefront never stores or hashes passwords itself; it only relays
// credentials and keeps the returned access token.
type AuthProvider interface {
	// SignUp registers a new email/password account.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)

	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut revokes the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error
}
