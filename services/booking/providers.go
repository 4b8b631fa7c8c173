package booking

import (
	"helpnest/models"
)

// ListForProvider returns every booking assigned to the provider public id,
// newest first.
func (s *DefaultBookingService) ListForProvider(publicID string) ([]models.Booking, error) {
	return s.Repo.ListByProviderPublicID(publicID)
}

// AvailableProviders lists every provider of the given kind, password
// excluded. The availability flag deliberately does not filter here; it only
// affects the account listing endpoint.
func (s *DefaultBookingService) AvailableProviders(serviceType string) ([]models.Account, error) {
	return s.Accounts.List(serviceType, false)
}
