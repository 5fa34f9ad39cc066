package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"courtside/handlers"
	"courtside/middleware"
	"courtside/utils"
)

// HandlerBundle gathers every handler the router needs.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Availability *handlers.AvailabilityHandler
	Court        *handlers.CourtHandler
	Payment      *handlers.PaymentHandler
}

// RegisterAvailabilityRoutes registers the read-side slot views.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/courts/:courtID/slots", hb.Availability.SlotGridHandler)
		api.GET("/venues/:venueID/status", hb.Availability.SportTypeStatusHandler)
	}
}

// RegisterBookingRoutes registers the reservation write path.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.ReserveHandler)
		api.POST("/quote", hb.Booking.QuoteHandler)
		api.DELETE("/:bookingID", hb.Booking.CancelHandler)
	}
}

// RegisterCourtRoutes registers owner-facing court management.
func RegisterCourtRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/courts")
	{
		api.PUT("/:courtID/schedule", hb.Court.UpdateScheduleHandler)
		api.POST("/:courtID/blocks", hb.Court.AddBlockHandler)
		api.DELETE("/:courtID/blocks/:blockID", hb.Court.RemoveBlockHandler)
	}
}

// RegisterPaymentRoutes registers the Stripe webhook endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/webhooks/stripe", hb.Payment.WebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCourtRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
