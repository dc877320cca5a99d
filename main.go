// File: haulify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haulify/config"
	"haulify/cron"
	"haulify/database"
	bookingRepoPkg "haulify/database/repository/booking"
	driverRepoPkg "haulify/database/repository/driver"
	scheduleRepoPkg "haulify/database/repository/schedule"
	settingsRepoPkg "haulify/database/repository/settings"
	ticketRepoPkg "haulify/database/repository/ticket"
	"haulify/handlers"
	"haulify/middleware"
	"haulify/routes"
	"haulify/services/admin"
	"haulify/services/availability"
	"haulify/services/booking"
	"haulify/services/driver"
	"haulify/services/geo"
	"haulify/services/mail"
	"haulify/services/ticket"
	"haulify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	driverRepo := driverRepoPkg.NewMongoDriverRepo()
	ticketRepo := ticketRepoPkg.NewMongoTicketRepo()

	// services.
	resolver := availability.NewResolver(scheduleRepo, utils.GetCacheClient())
	geoService := geo.NewGoogleDistanceService()
	mailService := mail.NewHTTPMailService()
	settingsService := &admin.SettingsService{Repo: settingsRepo}

	sessionService := &booking.DefaultSessionService{
		Cache:    utils.GetSessionCacheClient(),
		Resolver: resolver,
		Geo:      geoService,
		Rates:    settingsService,
	}
	bookingEngine := &booking.DefaultBookingEngine{
		Repo:     bookingRepo,
		Sessions: sessionService,
		Resolver: resolver,
		Rates:    settingsService,
		Payments: booking.NewStripePaymentService(logger),
		Mailer:   mailService,
	}

	analyticsService := &admin.AnalyticsService{Bookings: bookingRepo}
	marketingService := admin.NewMarketingService(bookingRepo)
	driverService := &driver.DefaultDriverService{Repo: driverRepo, Bookings: bookingRepo}
	ticketService := &ticket.DefaultTicketService{Repo: ticketRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      &handlers.BookingHandler{Sessions: sessionService, Engine: bookingEngine},
		Availability: &handlers.AvailabilityHandler{Resolver: resolver},
		Geo:          &handlers.GeoHandler{Geo: geoService},
		Admin: &handlers.AdminHandler{
			Settings:  settingsService,
			Analytics: analyticsService,
			Marketing: marketingService,
			Bookings:  bookingRepo,
			Schedule:  scheduleRepo,
			Resolver:  resolver,
		},
		Driver:         &handlers.DriverHandler{Service: driverService},
		Ticket:         &handlers.TicketHandler{Service: ticketService},
		RecaptchaGuard: handlers.NewRecaptchaVerifier(config.AppConfig.RecaptchaSecret).Middleware(),
	}

	limiter := middleware.NewRateLimiterStore(config.AppConfig.MaxRequestsPerMin)
	routes.RegisterRoutes(router, handlerBundle, limiter)

	// Background workers.
	cron.InitMarketingWorker(mailService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
