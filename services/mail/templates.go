// File: services/mail/templates.go
package mail

import (
	"fmt"
	"strings"

	"haulify/models"
	"haulify/services/pricing"
)

// BookingConfirmation builds the transactional email sent after a booking
// is confirmed. All amounts are rounded here, at the presentation boundary.
func BookingConfirmation(booking *models.Booking) models.EmailMessage {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", booking.CustomerName)
	fmt.Fprintf(&b, "Your move on %s (%s) is confirmed.\n\n", booking.Date, booking.Slot)
	fmt.Fprintf(&b, "Pickup:  %s, %s\n", booking.Pickup.Line, booking.Pickup.City)
	fmt.Fprintf(&b, "Dropoff: %s, %s\n\n", booking.Dropoff.Line, booking.Dropoff.City)

	fmt.Fprintf(&b, "Service tier: %s\n", booking.Tier)
	fmt.Fprintf(&b, "Distance: %.1f km\n\n", booking.DistanceKm)

	q := booking.Quote
	fmt.Fprintf(&b, "Base service fee: %s %s\n", pricing.FormatAmount(q.BaseServiceFee), q.Currency)
	fmt.Fprintf(&b, "Items:            %s %s\n", pricing.FormatAmount(q.ItemCost), q.Currency)
	fmt.Fprintf(&b, "Distance fee:     %s %s\n", pricing.FormatAmount(q.DistanceFee), q.Currency)
	fmt.Fprintf(&b, "Subtotal:         %s %s\n", pricing.FormatAmount(q.Subtotal), q.Currency)
	fmt.Fprintf(&b, "GST:              %s %s\n", pricing.FormatAmount(q.GST), q.Currency)
	fmt.Fprintf(&b, "QST:              %s %s\n", pricing.FormatAmount(q.QST), q.Currency)
	fmt.Fprintf(&b, "Total:            %s %s\n\n", pricing.FormatAmount(q.Total), q.Currency)

	fmt.Fprintf(&b, "Booking reference: %s\n", booking.ID)
	b.WriteString("\nThanks for moving with Haulify.\n")

	return models.EmailMessage{
		To:      booking.CustomerEmail,
		Subject: fmt.Sprintf("Your move is confirmed for %s", booking.Date),
		Body:    b.String(),
	}
}
