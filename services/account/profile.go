package account

import (
	"fmt"

	"helpnest/models"
)

// GetByPublicID resolves a provider by kind and public id, password excluded.
func (s *DefaultAccountService) GetByPublicID(role, publicID string) (*models.Account, error) {
	acc, err := s.Repo.GetByPublicID(role, publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if acc == nil {
		return nil, ErrNotFound
	}
	return acc, nil
}

// List retrieves accounts filtered by role and availability.
func (s *DefaultAccountService) List(role string, onlyAvailable bool) ([]models.Account, error) {
	return s.Repo.List(role, onlyAvailable)
}

// SetAvailability toggles whether a provider shows up as bookable.
func (s *DefaultAccountService) SetAvailability(accountID string, available bool) error {
	return s.Repo.SetAvailability(accountID, available)
}
