package bookingRepo

import "helpnest/models"

// BookingRepository defines data access for booking records. GetByID returns
// (nil, nil) when no document matches.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its id.
	GetByID(id string) (*models.Booking, error)
	// ListByProviderPublicID retrieves every booking assigned to the given
	// provider public id, newest first.
	ListByProviderPublicID(publicID string) ([]models.Booking, error)
	// UpdateStatus writes a new status onto a booking.
	UpdateStatus(id, status string) error
	// SetRating writes a customer rating onto a booking.
	SetRating(id string, rating *models.Rating) error
	// AverageRating aggregates the mean score and count across all rated
	// bookings referencing the given provider internal id.
	AverageRating(providerID string) (float64, int64, error)
}
