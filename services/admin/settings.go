// File: services/admin/settings.go
package admin

import (
	"context"

	"haulify/config"
	settingsRepo "haulify/database/repository/settings"
	"haulify/models"
	"haulify/services/pricing"
	"haulify/utils"

	"go.uber.org/zap"
)

// SettingsService reads and writes the admin-overridable pricing
// configuration. It satisfies the booking service's RateSource.
type SettingsService struct {
	Repo settingsRepo.SettingsRepository
}

// Current resolves the effective rate table: persisted overrides layered on
// the configured rates, which in turn layer on the built-in defaults. A
// settings-store failure falls back to the configured rates so quoting
// keeps working.
func (s *SettingsService) Current(ctx context.Context) pricing.Rates {
	settings, err := s.Repo.GetPricing(ctx)
	if err != nil {
		utils.GetLogger().Warn("failed to load pricing settings, using configured rates", zap.Error(err))
		return pricing.RatesFromConfig(config.AppConfig)
	}
	return pricing.RatesFromSettings(settings)
}

// GetPricing returns the stored override document, nil when none exists.
func (s *SettingsService) GetPricing(ctx context.Context) (*models.PricingSettings, error) {
	return s.Repo.GetPricing(ctx)
}

// SavePricing persists a new override document.
func (s *SettingsService) SavePricing(ctx context.Context, settings *models.PricingSettings) error {
	return s.Repo.SavePricing(ctx, settings)
}
