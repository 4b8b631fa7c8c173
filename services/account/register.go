package account

import (
	"fmt"

	"helpnest/models"
	"helpnest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// defaultRating is the score a provider starts with before any customer has
// rated a completed booking.
const defaultRating = 5

// Register creates a new provider account and issues its first token.
// Email uniqueness is scoped per role.
func (s *DefaultAccountService) Register(req models.RegisterRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Role, req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	publicID, err := s.uniquePublicID(req.Role)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate public id", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	acc := models.Account{
		ID:           uuid.New().String(),
		PublicID:     publicID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Phone:        req.Phone,
		IsAvailable:  true,
		Rating:       defaultRating,
		Bookings:     []string{},
	}

	if err := s.Repo.Create(&acc); err != nil {
		utils.GetLogger().Error("Register: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(acc.ID, acc.PublicID, acc.Role)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	acc.PasswordHash = ""
	return &AuthResponse{Token: token, User: &acc}, nil
}
