package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/services/availability"
	"courtside/utils"
)

// statusFor maps an engine refusal to an HTTP status. Conflicts are 409 so
// clients can distinguish "pick another slot" from malformed input.
func statusFor(code availability.ReasonCode) int {
	switch code {
	case availability.CodeSlotConflict, availability.CodeDuplicateBooking, availability.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// respondError renders any service error; engine refusals carry their reason
// code in the body, missing documents become 404, everything else is a 500.
func respondError(c *gin.Context, err error) {
	if code := availability.CodeOf(err); code != "" {
		c.JSON(statusFor(code), gin.H{"error": err.Error(), "code": string(code)})
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
}
