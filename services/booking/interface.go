// File: services/booking/interface.go
package booking

import (
	"context"

	"haulify/models"
	"haulify/services/pricing"
)

// RateSource supplies the authoritative pricing rates at quote time, so
// admin overrides apply without restarting the service.
type RateSource interface {
	Current(ctx context.Context) pricing.Rates
}

// StaticRateSource always serves a fixed rate table.
type StaticRateSource struct {
	Rates pricing.Rates
}

func (s StaticRateSource) Current(ctx context.Context) pricing.Rates {
	return s.Rates
}

// ItemInput adds one line to the session cart: either a catalog identifier
// or a fully-described custom item.
type ItemInput struct {
	CatalogID  string  `json:"catalogId,omitempty"`
	CustomName string  `json:"customName,omitempty"`
	UnitWeight float64 `json:"unitWeight,omitempty"`
	UnitVolume float64 `json:"unitVolume,omitempty"`
	Quantity   int     `json:"quantity"`
}

// RemoveInput decrements a named cart line.
type RemoveInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// UpdateInput carries one wizard step's changes; nil fields are untouched.
type UpdateInput struct {
	CustomerName  *string             `json:"customerName,omitempty"`
	CustomerEmail *string             `json:"customerEmail,omitempty"`
	CustomerPhone *string             `json:"customerPhone,omitempty"`
	Pickup        *models.Address     `json:"pickup,omitempty"`
	Dropoff       *models.Address     `json:"dropoff,omitempty"`
	Date          *string             `json:"date,omitempty"`
	Slot          *models.SlotID      `json:"slot,omitempty"`
	Tier          *models.ServiceTier `json:"tier,omitempty"`
	AddItems      []ItemInput         `json:"addItems,omitempty"`
	RemoveItems   []RemoveInput       `json:"removeItems,omitempty"`
}

// SessionService drives the customer quote wizard.
type SessionService interface {
	Initiate(ctx context.Context) (*models.SessionResponse, error)
	Update(ctx context.Context, sessionID string, input UpdateInput) (*models.SessionResponse, error)
	Get(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

// Engine confirms a finished session into a persisted booking.
type Engine interface {
	Confirm(ctx context.Context, sessionID string) (*models.Booking, string, error)
}
