// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes can
// be registered from a single wiring point in main.
type HandlerBundle struct {
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Geo          *GeoHandler
	Admin        *AdminHandler
	Driver       *DriverHandler
	Ticket       *TicketHandler

	// RecaptchaGuard wraps customer-facing write endpoints; it is a no-op
	// when no secret is configured.
	RecaptchaGuard gin.HandlerFunc
}
