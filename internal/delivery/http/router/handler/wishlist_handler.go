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

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, logger: logger}
}

// List handles the wishlist screen request.
func (h *WishlistHandler) List(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c.Request().Context())
	if user == nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	products, err := h.uc.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ToggleRequest identifies the product to toggle. Confirmed marks the
// second step of a removal.
type ToggleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Confirmed bool   `json:"confirmed"`
}

// Toggle handles the wishlist toggle request.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c.Request().Context())
	if user == nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	var input ToggleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Toggle(c.Request().Context(), usecase.ToggleWishlistInput{
		UserID:    user.ID,
		ProductID: input.ProductID,
		Confirmed: input.Confirmed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
