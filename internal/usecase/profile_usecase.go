package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileOutput is the profile screen's payload.
type ProfileOutput struct {
	Profile *entity.Profile `json:"profile"`
}

// OrderHistoryOutput lists the user's orders, newest first, with
// display-formatted totals.
type OrderHistoryOutput struct {
	Orders []OrderSummary `json:"orders"`
}

// OrderSummary is one order history row.
type OrderSummary struct {
	Order          entity.Order `json:"order"`
	FormattedTotal string       `json:"formattedTotal"`
}

// ProfileUsecase defines the interface for the profile screen.
type ProfileUsecase interface {
	// GetProfile loads the user's profile row.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// OrderHistory loads the user's orders, newest first.
	OrderHistory(ctx context.Context, userID uuid.UUID) (*OrderHistoryOutput, error)
}
