package booking

import (
	accountRepo "helpnest/database/repository/account"
	bookingRepo "helpnest/database/repository/booking"
	"helpnest/models"
)

// BookingService drives the booking lifecycle: creation, the status state
// machine, and post-completion rating.
type BookingService interface {
	Create(req models.CreateBookingRequest) (*models.Booking, error)
	ListForProvider(publicID string) ([]models.Booking, error)
	AvailableProviders(serviceType string) ([]models.Account, error)
	UpdateStatus(bookingID, newStatus string, caller *models.Account) (*models.Booking, error)
	Rate(bookingID string, score int, review string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Accounts accountRepo.AccountRepository
}
