package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"courtside/services/booking"
	"courtside/utils"
)

// PaymentHandler receives Stripe webhook events and settles bookings.
type PaymentHandler struct {
	Service       booking.BookingService
	WebhookSecret string
}

func NewPaymentHandler(svc booking.BookingService, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{Service: svc, WebhookSecret: webhookSecret}
}

// WebhookHandler verifies the event signature and transitions the matching
// booking. Unknown event types are acknowledged so Stripe stops retrying.
func (h *PaymentHandler) WebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.WebhookSecret)
	if err != nil {
		logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	var intent stripe.PaymentIntent
	switch event.Type {
	case "payment_intent.succeeded":
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
			return
		}
		if err := h.Service.ConfirmPayment(c.Request.Context(), intent.ID); err != nil {
			respondError(c, err)
			return
		}
	case "payment_intent.payment_failed", "payment_intent.canceled":
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
			return
		}
		if err := h.Service.FailPayment(c.Request.Context(), intent.ID); err != nil {
			respondError(c, err)
			return
		}
	default:
		logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
