package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newCartTestHandler() *CartHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cartUsecase := impl.NewCartService(impl.CartServiceParams{Logger: logger})

	return NewCartHandler(cartUsecase, logger)
}

func TestCartHandler_GetEmptyCart(t *testing.T) {
	handler := newCartTestHandler()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(HeaderCartSession, "guest-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalItems":0`)
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	handler := newCartTestHandler()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AddItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCartHandler_SetQuantity_RejectsNegative(t *testing.T) {
	handler := newCartTestHandler()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/p1", strings.NewReader(`{"quantity":-1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.SetQuantity(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
