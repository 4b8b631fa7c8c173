package models

import "time"

// Account roles. Every bookable provider is one of these two kinds.
const (
	RoleDriver = "driver"
	RoleMaid   = "maid"
)

// ValidRole reports whether role names a bookable provider kind.
func ValidRole(role string) bool {
	return role == RoleDriver || role == RoleMaid
}

// Account is a bookable service provider. Drivers and maids share one
// collection; Role is the discriminant. Email is unique per role, PublicID
// is unique globally.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	PublicID     string    `bson:"public_id" json:"public_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone" json:"phone"`
	IsAvailable  bool      `bson:"is_available" json:"is_available"`
	Rating       float64   `bson:"rating" json:"rating"`
	Bookings     []string  `bson:"bookings" json:"bookings"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
