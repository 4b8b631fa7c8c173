package account

import (
	"fmt"

	"helpnest/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies a provider's credentials and issues a fresh token.
func (s *DefaultAccountService) Authenticate(email, password, role string) (*AuthResponse, error) {
	acc, err := s.Repo.GetByEmail(role, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(acc.ID, acc.PublicID, acc.Role)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	acc.PasswordHash = ""
	return &AuthResponse{Token: token, User: acc}, nil
}
