package handler

import (
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HeaderCartSession identifies an anonymous shopper's cart and typeahead
// session. Logged-in users are keyed by their user ID instead.
const HeaderCartSession = "X-Cart-Session"

// sessionKey resolves the cart/search session key for a request.
func sessionKey(c echo.Context) string {
	if user := deliverycontext.GetAuthUser(c.Request().Context()); user != nil {
		return user.ID.String()
	}
	if key := c.Request().Header.Get(HeaderCartSession); key != "" {
		return key
	}

	return c.RealIP()
}
