package admin

import (
	"context"
	"errors"
	"testing"

	"haulify/config"
	"haulify/models"
	"haulify/services/pricing"

	"github.com/stretchr/testify/assert"
)

type fakeSettingsStore struct {
	settings *models.PricingSettings
	err      error
}

func (f *fakeSettingsStore) GetPricing(ctx context.Context) (*models.PricingSettings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsStore) SavePricing(ctx context.Context, settings *models.PricingSettings) error {
	f.settings = settings
	return nil
}

func withConfiguredRates(t *testing.T, cfg config.Config) {
	t.Helper()
	previous := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = previous })
}

func TestCurrentUsesConfiguredRatesWithEmptyStore(t *testing.T) {
	withConfiguredRates(t, config.Config{BaseServiceFee: 99, DistanceRatePerKm: 3.10})
	svc := &SettingsService{Repo: &fakeSettingsStore{}}

	rates := svc.Current(context.Background())
	assert.InDelta(t, 99.0, rates.BaseServiceFee, 1e-9)
	assert.InDelta(t, 3.10, rates.DistanceRatePerKm, 1e-9)
	// Knobs the config leaves unset keep their defaults.
	assert.InDelta(t, pricing.DefaultGSTRate, rates.GSTRate, 1e-9)
}

func TestCurrentSettingsOverlayKeepsConfiguredBase(t *testing.T) {
	withConfiguredRates(t, config.Config{BaseServiceFee: 99})
	svc := &SettingsService{Repo: &fakeSettingsStore{
		settings: &models.PricingSettings{DistanceRatePerKm: 4.00},
	}}

	rates := svc.Current(context.Background())
	// The stored document overrides only the distance rate; the configured
	// base fee survives.
	assert.InDelta(t, 4.00, rates.DistanceRatePerKm, 1e-9)
	assert.InDelta(t, 99.0, rates.BaseServiceFee, 1e-9)
}

func TestCurrentFallsBackToConfiguredRatesOnStoreError(t *testing.T) {
	withConfiguredRates(t, config.Config{BaseServiceFee: 99})
	svc := &SettingsService{Repo: &fakeSettingsStore{err: errors.New("settings store unreachable")}}

	rates := svc.Current(context.Background())
	assert.InDelta(t, 99.0, rates.BaseServiceFee, 1e-9)
	assert.InDelta(t, pricing.DefaultDistanceRatePerKm, rates.DistanceRatePerKm, 1e-9)
}
