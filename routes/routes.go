// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"wellspring/handlers"
	"wellspring/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP endpoint onto the router.
func RegisterRoutes(r *gin.Engine, b *handlers.HandlerBundle, tokens *middleware.TokenStore) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public schedule view. Optional auth so logged-in clients get Allowed
	// decisions instead of RequiresLogin.
	api.GET("/professionals/:id/schedule", middleware.OptionalAuthMiddleware(tokens), handlers.WeeklyScheduleHandler(b))

	// Account endpoints.
	clientAuth := api.Group("/clients")
	{
		clientAuth.POST("/register", handlers.ClientRegisterHandler(b))
		clientAuth.POST("/login", handlers.ClientLoginHandler(b))
	}
	professionalAuth := api.Group("/professionals")
	{
		professionalAuth.POST("/register", handlers.ProfessionalRegisterHandler(b))
		professionalAuth.POST("/login", handlers.ProfessionalLoginHandler(b))
	}

	// Client-only endpoints.
	clientAPI := api.Group("/", middleware.AuthMiddleware(tokens), middleware.RequireRole("client"))
	{
		clientAPI.POST("checkout", handlers.InitiateCheckoutHandler(b))
		clientAPI.POST("checkout/:checkoutID/booking", handlers.SubmitBookingHandler(b))
		clientAPI.POST("checkout/:checkoutID/payment", handlers.SubmitPaymentHandler(b))
		clientAPI.DELETE("checkout/:checkoutID", handlers.CancelCheckoutHandler(b))
		clientAPI.GET("bookings", handlers.MyBookingsHandler(b))
		clientAPI.PUT("clients/device", handlers.ClientDeviceHandler(b))
	}

	// Professional-only endpoints.
	professionalAPI := api.Group("/", middleware.AuthMiddleware(tokens), middleware.RequireRole("professional"))
	{
		professionalAPI.POST("sessions", handlers.PublishSessionsHandler(b))
		professionalAPI.GET("sessions", handlers.MySessionsHandler(b))
		professionalAPI.DELETE("sessions/:sessionID", handlers.DeleteSessionHandler(b))
		professionalAPI.POST("bookings/:bookingID/approve", handlers.ApproveBookingHandler(b))
		professionalAPI.PUT("professionals/device", handlers.ProfessionalDeviceHandler(b))
	}
}
