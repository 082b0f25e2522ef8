package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// Get handles the cart read request.
func (h *CartHandler) Get(c echo.Context) error {
	output, err := h.uc.Get(c.Request().Context(), sessionKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AddItemInput identifies the product to add.
type AddItemInput struct {
	ProductID string `json:"productId" validate:"required"`
}

// AddItem handles adding one unit of a product.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.AddItem(c.Request().Context(), sessionKey(c), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// SetQuantityInput carries the replacement quantity. Zero removes the
// line; negative values never come from the quantity stepper.
type SetQuantityInput struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// SetQuantity handles replacing a line's quantity.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var input SetQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.SetQuantity(c.Request().Context(), sessionKey(c), c.Param("id"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// RemoveItem handles removing a line entirely.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	output, err := h.uc.RemoveItem(c.Request().Context(), sessionKey(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Clear handles emptying the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	output, err := h.uc.Clear(c.Request().Context(), sessionKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
