package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courtside/services/booking"
)

// AvailabilityHandler serves the read-side slot views.
type AvailabilityHandler struct {
	Service booking.BookingService
}

func NewAvailabilityHandler(svc booking.BookingService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// SlotGridHandler returns the discretized day view for one court.
// GET /api/courts/:courtID/slots?date=2006-01-02&granularity=30
func (h *AvailabilityHandler) SlotGridHandler(c *gin.Context) {
	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	granularity := 0
	if raw := c.Query("granularity"); raw != "" {
		granularity, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be an integer"})
			return
		}
	}

	grid, err := h.Service.SlotGrid(c.Request.Context(), c.Param("courtID"), date, granularity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// SportTypeStatusHandler classifies every court of a sport at a venue for a
// requested window.
// GET /api/venues/:venueID/status?sport=badminton&date=...&start=HH:MM&end=HH:MM
func (h *AvailabilityHandler) SportTypeStatusHandler(c *gin.Context) {
	sport := c.Query("sport")
	if sport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sport query parameter is required"})
		return
	}
	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.Service.SportTypeStatus(c.Request.Context(),
		c.Param("venueID"), sport, date, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
