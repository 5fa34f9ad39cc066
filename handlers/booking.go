package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services/booking"
)

// BookingHandler exposes the reservation write path.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ReserveHandler creates a payment_pending reservation for the requested slot.
func (h *BookingHandler) ReserveHandler(c *gin.Context) {
	var req booking.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Reserve(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// CancelHandler cancels a booking owned by the requesting user.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	var input struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), bookingID, input.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "booking_id": bookingID})
}

// QuoteHandler prices a prospective booking without reserving anything.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var input struct {
		CourtID   string                      `json:"court_id" binding:"required"`
		Start     string                      `json:"start" binding:"required"`
		End       string                      `json:"end" binding:"required"`
		Equipment []models.EquipmentSelection `json:"equipment,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	breakdown, honored, err := h.Service.Quote(c.Request.Context(), input.CourtID, input.Start, input.End, input.Equipment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": breakdown, "equipment": honored})
}
