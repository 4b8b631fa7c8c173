package handlers

import (
	"net/http"

	"helpnest/middleware"
	"helpnest/models"
	"helpnest/services/account"
	"helpnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UsersHandler serves account listing and availability endpoints.
type UsersHandler struct {
	Service account.AccountService
}

// NewUsersHandler creates a UsersHandler backed by the given service.
func NewUsersHandler(svc account.AccountService) *UsersHandler {
	return &UsersHandler{Service: svc}
}

// ListAccountsHandler handles GET /api/users, filtered by role and
// availability.
func (h *UsersHandler) ListAccountsHandler(c *gin.Context) {
	role := c.Query("role")
	if role != "" && !models.ValidRole(role) {
		utils.JSONError(c, http.StatusBadRequest, "Please provide a valid role (driver or maid)")
		return
	}
	onlyAvailable := c.Query("isAvailable") == "true"

	accounts, err := h.Service.List(role, onlyAvailable)
	if err != nil {
		utils.GetLogger().Error("ListAccountsHandler: listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	c.JSON(http.StatusOK, accounts)
}

// AvailabilityHandler handles PUT /api/bookings/profile/availability,
// toggling whether the caller shows up as bookable.
func (h *UsersHandler) AvailabilityHandler(c *gin.Context) {
	acc := middleware.AccountFromContext(c)
	if acc == nil {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.SetAvailability(acc.ID, *req.IsAvailable); err != nil {
		utils.GetLogger().Error("AvailabilityHandler: update failed",
			zap.String("account_id", acc.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	msg := "You are now unavailable for bookings"
	if *req.IsAvailable {
		msg = "You are now available for bookings"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
