package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is one row of the hosted `profiles` collection. It is inserted
// once at registration and read back at login and on the profile screen.
type Profile struct {
	ID        uuid.UUID  `json:"id"` // Matches the auth user's ID.
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"` // "Member since" on the profile screen.
}

// WishlistEntry is one (user, product) pair of the hosted `wishlist`
// collection, unique per pair. Created and destroyed by toggle actions.
type WishlistEntry struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID string    `json:"product_id"`
}
