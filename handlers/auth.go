package handlers

import (
	"errors"
	"net/http"

	"helpnest/middleware"
	"helpnest/models"
	"helpnest/services/account"
	"helpnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and self-profile endpoints.
type AuthHandler struct {
	Service account.AccountService
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(svc account.AccountService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.GetLogger().Error("RegisterHandler: registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.GetLogger().Error("LoginHandler: authentication failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/user, returning the caller's own profile.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	acc := middleware.AccountFromContext(c)
	if acc == nil {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	c.JSON(http.StatusOK, acc)
}
