package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the user's profile row.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	profile, err := srv.profileRepo.FindProfileByID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrProfileLoadFailed
	}

	return &usecase.ProfileOutput{Profile: profile}, nil
}

// OrderHistory loads the user's orders, newest first.
func (srv *profileService) OrderHistory(ctx context.Context, userID uuid.UUID) (*usecase.OrderHistoryOutput, error) {
	orders, err := srv.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load order history", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrProfileLoadFailed
	}

	summaries := make([]usecase.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, usecase.OrderSummary{
			Order:          order,
			FormattedTotal: validation.FormatPrice(order.TotalPrice),
		})
	}

	return &usecase.OrderHistoryOutput{Orders: summaries}, nil
}
