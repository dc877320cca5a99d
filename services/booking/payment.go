// File: services/booking/payment.go
package booking

import (
	"context"
	"fmt"
	"math"

	"haulify/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates the payment intent a confirmed booking is paid
// through. It returns the intent ID and the client secret the frontend
// completes the charge with.
type PaymentService interface {
	CreateIntent(ctx context.Context, booking *models.Booking) (intentID, clientSecret string, err error)
}

// StripePaymentService backs PaymentService with Stripe PaymentIntents.
// The API key is set globally in main (stripe.Key).
type StripePaymentService struct {
	Logger *zap.Logger
}

func NewStripePaymentService(logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{Logger: logger}
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, booking *models.Booking) (string, string, error) {
	if booking.Quote.Total <= 0 {
		return "", "", fmt.Errorf("invalid payment amount %.4f", booking.Quote.Total)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents(booking.Quote.Total)),
		Currency: stripe.String(string(stripe.CurrencyCAD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Params: stripe.Params{
			Context: ctx,
			Metadata: map[string]string{
				"bookingId": booking.ID,
				"date":      booking.Date,
				"slot":      string(booking.Slot),
			},
		},
	}
	// One booking maps to at most one intent.
	params.SetIdempotencyKey("booking-" + booking.ID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("payment intent created",
		zap.String("bookingID", booking.ID),
		zap.String("intentID", intent.ID),
		zap.Int64("amountCents", intent.Amount))
	return intent.ID, intent.ClientSecret, nil
}

// amountInCents converts a full-precision quote total into the smallest
// currency unit; this is the single place the quote is rounded.
func amountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}
