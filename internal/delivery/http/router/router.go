// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	UserHandler     *handler.UserHandler
	CheckoutHandler *handler.CheckoutHandler
	ProfileHandler  *handler.ProfileHandler
	WishlistHandler *handler.WishlistHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	userHandler     *handler.UserHandler
	checkoutHandler *handler.CheckoutHandler
	profileHandler  *handler.ProfileHandler
	wishlistHandler *handler.WishlistHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		userHandler:     params.UserHandler,
		checkoutHandler: params.CheckoutHandler,
		profileHandler:  params.ProfileHandler,
		wishlistHandler: params.WishlistHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes are public; the typeahead session rides on the cart
	// session key.
	catalogGroup := e.Group("/catalog")
	catalogGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		catalogGroup.GET("/products", r.catalogHandler.Browse)
		catalogGroup.GET("/products/:id", r.catalogHandler.Product)
		catalogGroup.POST("/search", r.catalogHandler.SetSearchText)
		catalogGroup.GET("/suggestions", r.catalogHandler.Suggestions)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/demo-login", r.userHandler.DemoLogin)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Cart routes work for guests too.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Checkout resolves the auth gate itself so an anonymous submission
	// gets the business error instead of a bare 401.
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
	}

	// Order, profile and wishlist routes require authentication.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/:id/qr", r.checkoutHandler.OrderQR)
		orderGroup.POST("/verify", r.checkoutHandler.VerifyOrderQR)
	}

	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.GET("/orders", r.profileHandler.OrderHistory)
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.POST("/toggle", r.wishlistHandler.Toggle)
	}
}
