package models

// RegisterRequest is the payload for provider registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=driver maid"`
	Phone    string `json:"phone" binding:"required"`
}

// LoginRequest is the payload for provider login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=driver maid"`
}

// CreateBookingRequest is the payload a customer submits against a
// discovered provider.
type CreateBookingRequest struct {
	CustomerName     string `json:"customer_name" binding:"required"`
	CustomerPhone    string `json:"customer_phone" binding:"required"`
	ServiceType      string `json:"service_type" binding:"required,oneof=driver maid"`
	ProviderPublicID string `json:"provider_public_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Address          string `json:"address" binding:"required"`
	Notes            string `json:"notes"`
}

// UpdateStatusRequest carries the requested booking status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RateBookingRequest carries a customer's score for a completed booking.
type RateBookingRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// AvailabilityRequest toggles a provider's availability flag.
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
