package tablestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const profilesTable = "profiles"

type profileRepository struct {
	client *Client
}

// NewProfileRepository creates a profile repository backed by the hosted
// `profiles` collection.
func NewProfileRepository(client *Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	if err := r.client.From(profilesTable).Insert(ctx, profile, nil); err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

func (r *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profiles []entity.Profile
	if err := r.client.From(profilesTable).Select("*").Eq("id", id.String()).Limit(1).Get(ctx, &profiles); err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	if len(profiles) == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return &profiles[0], nil
}
