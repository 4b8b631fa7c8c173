package models

import "time"

// Booking statuses. Pending is the initial state; rejected, completed and
// cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the five booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move between two statuses.
// Terminal states never transition.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

// Rating is a customer's score for a completed booking.
type Rating struct {
	Score  int    `bson:"score" json:"score"`
	Review string `bson:"review,omitempty" json:"review,omitempty"`
}

// Booking is a customer's request for a provider's service. The assigned
// provider is referenced both by internal id and by denormalized public id.
type Booking struct {
	ID            string  `bson:"id" json:"id"`
	CustomerName  string  `bson:"customer_name" json:"customer_name"`
	CustomerPhone string  `bson:"customer_phone" json:"customer_phone"`
	ServiceType   string  `bson:"service_type" json:"service_type"`
	Date          string  `bson:"date" json:"date"`
	Time          string  `bson:"time" json:"time"`
	Address       string  `bson:"address" json:"address"`
	Notes         string  `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string  `bson:"status" json:"status"`
	ProviderID    string  `bson:"provider_id" json:"provider_id"`
	AssignedTo    string  `bson:"assigned_to_public_id" json:"assigned_to_public_id"`
	Rating        *Rating `bson:"rating,omitempty" json:"rating,omitempty"`

	// LegacyAssignedTo holds the provider public id for records written
	// before the field rename. Never populated for new records.
	LegacyAssignedTo string `bson:"service_provider_unique_id,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
