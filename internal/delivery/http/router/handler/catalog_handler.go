package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// specParamPrefix marks query parameters carrying spec filter selections,
// e.g. spec.Display=OLED.
const specParamPrefix = "spec."

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// Browse handles the catalog listing request with filters and sort.
func (h *CatalogHandler) Browse(c echo.Context) error {
	input := usecase.BrowseInput{
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "minPrice must be a number")
		}
		input.MinPrice = value
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "maxPrice must be a number")
		}
		input.MaxPrice = value
	}

	for key, values := range c.QueryParams() {
		if !strings.HasPrefix(key, specParamPrefix) || len(values) == 0 {
			continue
		}
		if input.SpecFilter == nil {
			input.SpecFilter = make(map[string]string)
		}
		input.SpecFilter[strings.TrimPrefix(key, specParamPrefix)] = values[0]
	}

	output, err := h.uc.Browse(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Product handles a single product lookup.
func (h *CatalogHandler) Product(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// SearchInput is the typeahead keystroke payload.
type SearchInput struct {
	Query string `json:"query" validate:"max=200"`
}

// SetSearchText handles a typeahead keystroke.
func (h *CatalogHandler) SetSearchText(c echo.Context) error {
	var input SearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.uc.SetSearchText(c.Request().Context(), usecase.SuggestInput{
		SessionID: sessionKey(c),
		Query:     input.Query,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "")
}

// Suggestions handles the typeahead suggestion poll.
func (h *CatalogHandler) Suggestions(c echo.Context) error {
	output, err := h.uc.Suggestions(c.Request().Context(), sessionKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
