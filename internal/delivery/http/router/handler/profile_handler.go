package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile handles the profile screen request.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c.Request().Context())
	if user == nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	output, err := h.uc.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// OrderHistory handles the order history request.
func (h *ProfileHandler) OrderHistory(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c.Request().Context())
	if user == nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	output, err := h.uc.OrderHistory(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
