package routes

import (
	"time"

	"haulify/handlers"
	"haulify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes sets up the customer quote wizard endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quote")
	{
		api.POST("/session", hb.Booking.InitiateSession)
		api.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		api.POST("/confirm", hb.RecaptchaGuard, hb.Booking.ConfirmBooking)
	}
}

// RegisterAvailabilityRoutes sets up the calendar and catalog endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/calendar", hb.Availability.Calendar)
		api.GET("/slot", hb.Availability.CheckSlot)
	}
	r.GET("/api/catalog", hb.Availability.Catalog)
}

// RegisterGeoRoutes sets up address distance and geocoding endpoints.
func RegisterGeoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geo")
	{
		api.POST("/distance", hb.Geo.Distance)
		api.GET("/geocode", hb.Geo.Geocode)
	}
}

// RegisterTicketRoutes sets up the support ticket endpoints. Opening a
// ticket is public; the rest is back-office.
func RegisterTicketRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tickets")
	{
		api.POST("", hb.RecaptchaGuard, hb.Ticket.Open)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Ticket.List)
		protected.GET("/:id", hb.Ticket.Get)
		protected.POST("/:id/reply", hb.Ticket.Reply)
		protected.POST("/:id/close", hb.Ticket.Close)
	}
}

// RegisterAdminRoutes sets up back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())

		protected.GET("/bookings", hb.Admin.ListBookings)
		protected.GET("/bookings/day/:date", hb.Admin.BookingsForDay)
		protected.PATCH("/bookings/:id/status", hb.Admin.UpdateBookingStatus)
		protected.GET("/analytics", hb.Admin.Summary)

		protected.GET("/settings/pricing", hb.Admin.GetPricingSettings)
		protected.PUT("/settings/pricing", hb.Admin.SavePricingSettings)

		protected.GET("/schedule", hb.Admin.GetScheduleRules)
		protected.PUT("/schedule/weekly", hb.Admin.UpsertWeeklySlot)
		protected.DELETE("/schedule/weekly/:id", hb.Admin.DeleteWeeklySlot)
		protected.POST("/schedule/blackouts", hb.Admin.AddBlackout)
		protected.DELETE("/schedule/blackouts/:id", hb.Admin.DeleteBlackout)

		protected.POST("/marketing/campaigns", hb.Admin.SendCampaign)

		protected.POST("/drivers", hb.Driver.Create)
		protected.GET("/drivers", hb.Driver.List)
		protected.GET("/drivers/:id", hb.Driver.Get)
		protected.PUT("/drivers/:id", hb.Driver.Update)
		protected.DELETE("/drivers/:id", hb.Driver.Delete)
		protected.POST("/drivers/assign", hb.Driver.Assign)
		protected.GET("/drivers/:id/schedule", hb.Driver.Schedule)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter *middleware.RateLimiterStore) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Recaptcha-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(limiter))

	RegisterQuoteRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterGeoRoutes(r, hb)
	RegisterTicketRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
