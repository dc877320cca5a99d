// File: services/booking/confirm.go
package booking

import (
	"context"
	"time"

	bookingRepo "haulify/database/repository/booking"
	"haulify/models"
	"haulify/services/availability"
	"haulify/services/mail"
	"haulify/services/pricing"
	"haulify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingEngine turns a completed quote session into a persisted
// booking. The availability check and the quote are both redone
// server-side against the authoritative rule store and rate table; the
// session's cached quote is never trusted.
type DefaultBookingEngine struct {
	Repo     bookingRepo.BookingRepository
	Sessions SessionService
	Resolver *availability.Resolver
	Rates    RateSource
	Payments PaymentService
	Mailer   mail.Service
}

func (e *DefaultBookingEngine) Confirm(ctx context.Context, sessionID string) (*models.Booking, string, error) {
	logger := utils.GetLogger()

	session, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	if session.Cart.IsEmpty() {
		return nil, "", ErrEmptyCart
	}
	if session.Date == "" || session.Slot == "" || session.Tier == "" {
		return nil, "", ErrIncomplete
	}

	date, err := time.Parse("2006-01-02", session.Date)
	if err != nil {
		return nil, "", &BookingError{Code: "invalidDate", Message: "date must be YYYY-MM-DD"}
	}
	if !e.Resolver.CheckSlot(ctx, date, session.Slot) {
		return nil, "", ErrSlotUnavailable
	}

	quote, err := pricing.ComputeQuote(session.Cart.Items, session.Tier, session.DistanceKm, e.Rates.Current(ctx))
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	record := &models.Booking{
		ID:            uuid.New().String(),
		CustomerName:  session.CustomerName,
		CustomerEmail: session.CustomerEmail,
		CustomerPhone: session.CustomerPhone,
		Pickup:        session.Pickup,
		Dropoff:       session.Dropoff,
		Date:          session.Date,
		Slot:          session.Slot,
		Tier:          session.Tier,
		Items:         session.Cart.Items,
		DistanceKm:    session.DistanceKm,
		Quote:         *quote,
		Status:        models.BookingPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	intentID, clientSecret, err := e.Payments.CreateIntent(ctx, record)
	if err != nil {
		return nil, "", err
	}
	record.PaymentIntentID = intentID
	record.Status = models.BookingConfirmed

	if err := e.Repo.Create(ctx, record); err != nil {
		return nil, "", err
	}

	if err := e.Sessions.Cancel(ctx, sessionID); err != nil {
		logger.Warn("failed to delete session after confirm",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	// Confirmation email is best-effort; the booking stands either way.
	if record.CustomerEmail != "" {
		go func(b models.Booking) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Mailer.Send(sendCtx, mail.BookingConfirmation(&b)); err != nil {
				logger.Warn("failed to send confirmation email",
					zap.String("bookingID", b.ID), zap.Error(err))
			}
		}(*record)
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("date", record.Date),
		zap.String("slot", string(record.Slot)))
	return record, clientSecret, nil
}
