package booking

import (
	"fmt"
	"math"
	"time"

	"helpnest/models"
	"helpnest/utils"

	"go.uber.org/zap"
)

// Rate records a customer score against a completed booking and refreshes
// the provider's average. Repeated ratings overwrite; the average is always
// recomputed from current scores, never rolled forward.
func (s *DefaultBookingService) Rate(bookingID string, score int, review string) (*models.Booking, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.Status != models.StatusCompleted {
		return nil, ErrNotCompleted
	}

	rating := &models.Rating{Score: score, Review: review}
	if err := s.Repo.SetRating(bookingID, rating); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	if err := s.refreshProviderRating(b.ProviderID); err != nil {
		// The booking's own rating is saved; a failed recompute only leaves
		// the provider average stale until the next rating lands.
		utils.GetLogger().Warn("Rate: failed to refresh provider rating",
			zap.String("provider_id", b.ProviderID), zap.Error(err))
	}

	b.Rating = rating
	b.UpdatedAt = time.Now()
	return b, nil
}

// refreshProviderRating recomputes the provider's mean score across all
// rated bookings and writes it back, rounded to one decimal place.
// Concurrent ratings race on the final write; last write wins.
func (s *DefaultBookingService) refreshProviderRating(providerID string) error {
	avg, count, err := s.Repo.AverageRating(providerID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return s.Accounts.SetRating(providerID, math.Round(avg*10)/10)
}
