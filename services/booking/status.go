package booking

import (
	"fmt"
	"time"

	"helpnest/models"
)

// UpdateStatus moves a booking through its state machine. Only the assigned
// provider may change status, compared by public identifier. The ownership
// check runs before any status validation so a stranger learns nothing about
// which transitions exist.
func (s *DefaultBookingService) UpdateStatus(bookingID, newStatus string, caller *models.Account) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if caller == nil || b.AssignedTo != caller.PublicID {
		return nil, ErrNotAssigned
	}

	if !models.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	if !models.CanTransition(b.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.Repo.UpdateStatus(bookingID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	b.Status = newStatus
	b.UpdatedAt = time.Now()
	return b, nil
}
