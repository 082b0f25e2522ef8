package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile row exists for the user.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository covers the `profiles` collection: inserted once at
// registration, read back at login and on the profile screen.
type ProfileRepository interface {
	// CreateProfile inserts the registration row for a new auth user.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves the profile row matching the auth user ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}
