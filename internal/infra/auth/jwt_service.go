// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// jwtService verifies access tokens minted by the backend's auth surface.
// Tokens are HS256-signed with the project's JWT secret; the storefront
// only verifies, it never issues.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Backend.JWTSecret == "" {
		return nil, errors.New("backend jwt secret must be provided")
	}

	return &jwtService{secret: cfg.Backend.JWTSecret}, nil
}

// ParseAccessToken validates the token signature and expiry and extracts
// the user identity from the sub and email claims.
func (s *jwtService) ParseAccessToken(tokenString string) (*entity.AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.New("token subject is not a user id")
	}

	email, _ := claims["email"].(string)

	return &entity.AuthUser{ID: userID, Email: email}, nil
}
