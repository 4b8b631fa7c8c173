package booking

import "errors"

var (
	// ErrBookingNotFound signals that no booking matches the given id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrProviderNotFound signals that the targeted provider does not exist.
	ErrProviderNotFound = errors.New("service provider not found")
	// ErrNotAssigned signals that the caller is not the provider the booking
	// is assigned to.
	ErrNotAssigned = errors.New("not authorized to update this booking")
	// ErrInvalidStatus signals a status string outside the five known states.
	ErrInvalidStatus = errors.New("unknown booking status")
	// ErrInvalidTransition signals a move the status state machine forbids.
	ErrInvalidTransition = errors.New("illegal status transition")
	// ErrNotCompleted signals a rating attempt on a booking that has not
	// been completed.
	ErrNotCompleted = errors.New("only completed bookings can be rated")
	// ErrInvalidScore signals a rating score outside 1..5.
	ErrInvalidScore = errors.New("rating score must be between 1 and 5")
)
