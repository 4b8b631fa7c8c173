package accountRepo

import "helpnest/models"

// AccountRepository defines data access for provider accounts. Lookup
// methods return (nil, nil) when no document matches.
type AccountRepository interface {
	// Create inserts a new account record.
	Create(acc *models.Account) error
	// GetByEmail retrieves an account by email, scoped to a role. Includes
	// the password hash; callers that serve the result must strip it.
	GetByEmail(role, email string) (*models.Account, error)
	// GetByPublicID retrieves an account by public id, scoped to a role,
	// with the password hash excluded.
	GetByPublicID(role, publicID string) (*models.Account, error)
	// PublicIDExists reports whether any account holds the given public id.
	PublicIDExists(publicID string) (bool, error)
	// List retrieves accounts, optionally filtered by role and availability,
	// with the password hash excluded.
	List(role string, onlyAvailable bool) ([]models.Account, error)
	// AppendBooking adds a booking id to the account's booking list.
	AppendBooking(accountID, bookingID string) error
	// SetRating writes a recomputed average rating onto the account.
	SetRating(accountID string, rating float64) error
	// SetAvailability toggles the account's availability flag.
	SetAvailability(accountID string, available bool) error
}
