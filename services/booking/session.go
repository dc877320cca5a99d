// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"time"

	"haulify/models"
	"haulify/services/availability"
	"haulify/services/geo"
	"haulify/services/pricing"
	"haulify/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "quote-session:"

// DefaultSessionService keeps wizard state in Redis and recomputes the
// quote after every step that changes a pricing input.
type DefaultSessionService struct {
	Cache    *redis.Client
	Resolver *availability.Resolver
	Geo      geo.DistanceService
	Rates    RateSource
}

func (s *DefaultSessionService) Initiate(ctx context.Context) (*models.SessionResponse, error) {
	session := &models.QuoteSession{
		SessionID: uuid.New().String(),
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return &models.SessionResponse{SessionID: session.SessionID, Session: session}, nil
}

func (s *DefaultSessionService) Update(ctx context.Context, sessionID string, input UpdateInput) (*models.SessionResponse, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		session.CustomerName = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		session.CustomerEmail = *input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		session.CustomerPhone = *input.CustomerPhone
	}

	addressChanged := false
	if input.Pickup != nil {
		session.Pickup = *input.Pickup
		addressChanged = true
	}
	if input.Dropoff != nil {
		session.Dropoff = *input.Dropoff
		addressChanged = true
	}
	if addressChanged && session.Pickup.Line != "" && session.Dropoff.Line != "" {
		km, err := s.Geo.DistanceKm(ctx, session.Pickup, session.Dropoff)
		if err != nil {
			utils.GetLogger().Warn("distance lookup failed",
				zap.String("sessionID", sessionID), zap.Error(err))
		} else {
			session.DistanceKm = km
		}
	}

	if input.Date != nil && input.Slot != nil {
		date, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			return nil, &BookingError{Code: "invalidDate", Message: "date must be YYYY-MM-DD"}
		}
		if !s.Resolver.CheckSlot(ctx, date, *input.Slot) {
			return nil, ErrSlotUnavailable
		}
		session.Date = *input.Date
		session.Slot = *input.Slot
	}

	if input.Tier != nil {
		if !input.Tier.Valid() {
			return nil, &BookingError{Code: "unknownTier", Message: "service tier must be Basic, Premium or WhiteGlove"}
		}
		session.Tier = *input.Tier
	}

	for _, add := range input.AddItems {
		item, err := buildItem(add)
		if err != nil {
			return nil, err
		}
		session.Cart.Add(item)
	}
	for _, rm := range input.RemoveItems {
		session.Cart.Remove(rm.Name, rm.Quantity)
	}

	// Recompute the quote whenever the pricing inputs are complete.
	if session.Tier != "" && !session.Cart.IsEmpty() {
		quote, err := pricing.ComputeQuote(session.Cart.Items, session.Tier, session.DistanceKm, s.Rates.Current(ctx))
		if err != nil {
			return nil, err
		}
		session.Quote = quote
	} else {
		session.Quote = nil
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return &models.SessionResponse{SessionID: session.SessionID, Session: session, Quote: session.Quote}, nil
}

func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return err
	}
	return nil
}

func (s *DefaultSessionService) save(ctx context.Context, session *models.QuoteSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Cache.Set(ctx, sessionKeyPrefix+session.SessionID, data, utils.QuoteSessionTTL).Err()
}

func buildItem(input ItemInput) (models.InventoryItem, error) {
	if input.CatalogID != "" {
		return pricing.BuildItem(input.CatalogID, input.Quantity)
	}
	return pricing.BuildCustomItem(input.CustomName, input.UnitWeight, input.UnitVolume, input.Quantity)
}
