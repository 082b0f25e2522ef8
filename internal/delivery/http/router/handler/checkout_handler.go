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

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, logger: logger}
}

// PlaceOrderRequest is the checkout form payload. The length caps bound
// abusive input; field-level shape checks stay in the domain validator so
// the response carries the localized per-field messages.
type PlaceOrderRequest struct {
	Email           string `json:"email" validate:"max=254"`
	Phone           string `json:"phone" validate:"max=32"`
	LastName        string `json:"lastName" validate:"max=50"`
	FirstName       string `json:"firstName" validate:"max=50"`
	Patronymic      string `json:"patronymic" validate:"max=50"`
	PaymentCategory string `json:"paymentCategory" validate:"max=32"`
	PaymentMethod   string `json:"paymentMethod" validate:"max=32"`
}

// PlaceOrder handles the order submission.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input PlaceOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		User:            deliverycontext.GetAuthUser(c.Request().Context()),
		SessionKey:      sessionKey(c),
		Email:           input.Email,
		Phone:           input.Phone,
		LastName:        input.LastName,
		FirstName:       input.FirstName,
		Patronymic:      input.Patronymic,
		PaymentCategory: input.PaymentCategory,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "")
}

// OrderQR renders the pickup QR code PNG for one of the user's orders.
func (h *CheckoutHandler) OrderQR(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c.Request().Context())
	if user == nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	png, err := h.uc.OrderQR(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// VerifyOrderQRRequest carries a scanned pickup QR payload.
type VerifyOrderQRRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// VerifyOrderQR resolves a scanned pickup QR payload to the user's order.
func (h *CheckoutHandler) VerifyOrderQR(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c.Request().Context())
	if user == nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	var input VerifyOrderQRRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.uc.VerifyOrderQR(c.Request().Context(), user.ID, input.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}
