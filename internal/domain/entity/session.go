package entity

import "github.com/google/uuid"

// AuthUser is the identity the hosted auth surface reports for a session.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the result of a successful sign-in or sign-up against the
// hosted auth surface. The access token is the only session state the
// storefront holds; the backend owns everything else.
type Session struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}
