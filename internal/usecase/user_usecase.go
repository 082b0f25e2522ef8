package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionOutput returns the backend session after a successful
// registration or login.
type SessionOutput struct {
	AccessToken string          `json:"accessToken"`
	User        entity.AuthUser `json:"user"`
}

// UserUsecase defines the interface for account operations. All credential
// handling is relayed to the hosted auth surface.
type UserUsecase interface {
	// Register validates the form locally, then creates the auth account
	// and its profile row.
	Register(ctx context.Context, input RegisterInput) (*SessionOutput, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// DemoLogin signs in with the preconfigured demo account.
	DemoLogin(ctx context.Context) (*SessionOutput, error)

	// Logout revokes the session behind the access token.
	Logout(ctx context.Context, accessToken string) error
}
