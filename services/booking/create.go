package booking

import (
	"fmt"

	"helpnest/models"
	"helpnest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create resolves the targeted provider and persists a new pending booking
// stamped with the provider's internal and public ids.
func (s *DefaultBookingService) Create(req models.CreateBookingRequest) (*models.Booking, error) {
	provider, err := s.Accounts.GetByPublicID(req.ServiceType, req.ProviderPublicID)
	if err != nil {
		utils.GetLogger().Error("CreateBooking: failed to resolve provider", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking, please try again")
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	b := models.Booking{
		ID:            uuid.New().String(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceType:   req.ServiceType,
		Date:          req.Date,
		Time:          req.Time,
		Address:       req.Address,
		Notes:         req.Notes,
		Status:        models.StatusPending,
		ProviderID:    provider.ID,
		AssignedTo:    provider.PublicID,
	}

	if err := s.Repo.Create(&b); err != nil {
		utils.GetLogger().Error("CreateBooking: failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking, please try again")
	}

	// Second write, no multi-document transaction. A crash here leaves the
	// booking persisted but absent from the provider's list.
	if err := s.Accounts.AppendBooking(provider.ID, b.ID); err != nil {
		utils.GetLogger().Error("CreateBooking: failed to append booking to provider",
			zap.String("provider_id", provider.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking, please try again")
	}

	return &b, nil
}
