package account

import (
	accountRepo "helpnest/database/repository/account"
	"helpnest/models"
)

// AccountService manages provider registration, authentication and profile
// state for both provider kinds.
type AccountService interface {
	Register(req models.RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password, role string) (*AuthResponse, error)
	GetByPublicID(role, publicID string) (*models.Account, error)
	List(role string, onlyAvailable bool) ([]models.Account, error)
	SetAvailability(accountID string, available bool) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}

// AuthResponse bundles a freshly issued bearer token with the account it
// identifies. The account's password hash is always stripped.
type AuthResponse struct {
	Token string          `json:"token"`
	User  *models.Account `json:"user"`
}
