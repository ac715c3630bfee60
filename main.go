// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellspring/config"
	"wellspring/cron"
	bookingRepo "wellspring/database/repository/booking"
	clientRepo "wellspring/database/repository/client"
	professionalRepo "wellspring/database/repository/professional"
	sessionRepo "wellspring/database/repository/session"
	"wellspring/handlers"
	"wellspring/middleware"
	"wellspring/routes"
	bookingService "wellspring/services/booking"
	clientService "wellspring/services/client"
	"wellspring/services/notification"
	professionalService "wellspring/services/professional"
	"wellspring/utils"

	"wellspring/database"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCheckoutCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	sessions := sessionRepo.NewMongoSessionRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	professionals := professionalRepo.NewMongoProfessionalRepo()
	clients := clientRepo.NewMongoClientRepo()

	// Services.
	notifier := &notification.DefaultNotificationService{
		Clients:       clients,
		Professionals: professionals,
	}
	bookingSvc := &bookingService.DefaultBookingService{
		SessionRepo:      sessions,
		BookingRepo:      bookings,
		ProfessionalRepo: professionals,
		Checkouts:        bookingService.NewRedisCheckoutStore(),
		PaymentHandler:   bookingService.NewPaymentHandler(logger),
		Notification:     notifier,
	}
	professionalSvc := &professionalService.DefaultProfessionalService{
		Repo:        professionals,
		SessionRepo: sessions,
	}
	clientSvc := &clientService.DefaultClientService{
		Repo:        clients,
		BookingRepo: bookings,
	}

	bundle := &handlers.HandlerBundle{
		BookingService:      bookingSvc,
		ClientService:       clientSvc,
		ProfessionalService: professionalSvc,
	}

	// Background jobs: session reminders and pending-booking expiry.
	worker := &cron.Worker{
		BookingService: bookingSvc,
		BookingRepo:    bookings,
		Notification:   notifier,
	}
	if err := worker.Start(); err != nil {
		logger.Fatal("failed to start background worker", zap.Error(err))
	}
	go middleware.CleanupVisitors()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	tokens := &middleware.TokenStore{Clients: clients, Professionals: professionals}

	router := gin.New()
	router.Use(gin.Recovery(), utils.ErrorHandler())
	routes.RegisterRoutes(router, bundle, tokens)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	worker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
