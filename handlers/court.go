package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services/booking"
)

// CourtHandler exposes owner-facing court management: schedules and blocks.
type CourtHandler struct {
	Service booking.BookingService
}

func NewCourtHandler(svc booking.BookingService) *CourtHandler {
	return &CourtHandler{Service: svc}
}

// UpdateScheduleHandler replaces a court's weekly operating hours.
func (h *CourtHandler) UpdateScheduleHandler(c *gin.Context) {
	var schedule models.WeeklySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateSchedule(c.Request.Context(), c.Param("courtID"), schedule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// AddBlockHandler declares an unavailability window on a court.
func (h *CourtHandler) AddBlockHandler(c *gin.Context) {
	var req booking.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.CourtID = c.Param("courtID")

	slot, err := h.Service.AddBlock(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"block": slot})
}

// RemoveBlockHandler deletes an owner-declared block.
func (h *CourtHandler) RemoveBlockHandler(c *gin.Context) {
	if err := h.Service.RemoveBlock(c.Request.Context(), c.Param("courtID"), c.Param("blockID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
