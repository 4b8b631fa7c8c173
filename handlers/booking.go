package handlers

import (
	"errors"
	"net/http"

	"helpnest/middleware"
	"helpnest/models"
	"helpnest/services/booking"
	"helpnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation, discovery, lifecycle and rating
// endpoints.
type BookingHandler struct {
	Service booking.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler backed by the given service.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, logger: logger}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.Service.Create(req)
	if err != nil {
		if errors.Is(err, booking.ErrProviderNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("CreateBookingHandler: create failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": b})
}

// AvailableProvidersHandler handles GET /api/bookings/available-providers.
func (h *BookingHandler) AvailableProvidersHandler(c *gin.Context) {
	serviceType := c.Query("type")
	if !models.ValidRole(serviceType) {
		utils.JSONError(c, http.StatusBadRequest, "Please provide a valid service type (driver or maid)")
		return
	}

	providers, err := h.Service.AvailableProviders(serviceType)
	if err != nil {
		h.logger.Error("AvailableProvidersHandler: listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if providers == nil {
		providers = []models.Account{}
	}

	c.JSON(http.StatusOK, providers)
}

// MyDashboardHandler handles GET /api/bookings/my-dashboard, listing the
// caller's assigned bookings newest first.
func (h *BookingHandler) MyDashboardHandler(c *gin.Context) {
	acc := middleware.AccountFromContext(c)
	if acc == nil {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	bookings, err := h.Service.ListForProvider(acc.PublicID)
	if err != nil {
		h.logger.Error("MyDashboardHandler: listing failed",
			zap.String("public_id", acc.PublicID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// UpdateStatusHandler handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	acc := middleware.AccountFromContext(c)
	b, err := h.Service.UpdateStatus(c.Param("id"), req.Status, acc)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, booking.ErrNotAssigned):
			utils.JSONError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, booking.ErrInvalidStatus), errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("UpdateStatusHandler: update failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// RateBookingHandler handles PUT /api/bookings/:id/rate.
func (h *BookingHandler) RateBookingHandler(c *gin.Context) {
	var req models.RateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.Service.Rate(c.Param("id"), req.Rating, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, booking.ErrNotCompleted), errors.Is(err, booking.ErrInvalidScore):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("RateBookingHandler: rating failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your feedback!", "booking": b})
}
