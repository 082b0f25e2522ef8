package service

import (
	"storefront/internal/domain/entity"
)

// TokenService parses and verifies access tokens issued by the hosted
// auth surface. The storefront never mints tokens of its own.
type TokenService interface {
	// ParseAccessToken verifies the token signature and expiry and returns
	// the identity it carries.
	ParseAccessToken(tokenString string) (*entity.AuthUser, error)
}
