package pricing

import (
	"haulify/config"
	"haulify/models"
)

// Built-in pricing constants, in CAD.
const (
	DefaultBaseServiceFee    = 50.0
	DefaultDistanceRatePerKm = 2.64
	DefaultBasicRate         = 0.35
	DefaultPremiumRate       = 0.38
	DefaultWhiteGloveRate    = 0.41
	DefaultGSTRate           = 0.05
	DefaultQSTRate           = 0.09975
)

// Currency is the currency every quote is denominated in.
const Currency = "CAD"

// Rates carries the fee constants a quote is computed from. The quote
// function takes it explicitly so admin overrides flow through without
// package-level mutable state.
type Rates struct {
	BaseServiceFee    float64
	DistanceRatePerKm float64
	TierRates         map[models.ServiceTier]float64
	GSTRate           float64
	QSTRate           float64
}

// DefaultRates returns the built-in rate table.
func DefaultRates() Rates {
	return Rates{
		BaseServiceFee:    DefaultBaseServiceFee,
		DistanceRatePerKm: DefaultDistanceRatePerKm,
		TierRates: map[models.ServiceTier]float64{
			models.TierBasic:      DefaultBasicRate,
			models.TierPremium:    DefaultPremiumRate,
			models.TierWhiteGlove: DefaultWhiteGloveRate,
		},
		GSTRate: DefaultGSTRate,
		QSTRate: DefaultQSTRate,
	}
}

// TierRate resolves the per-pound rate for a tier. Unknown tiers error
// rather than falling back to a default rate.
func (r Rates) TierRate(tier models.ServiceTier) (float64, error) {
	rate, ok := r.TierRates[tier]
	if !ok || rate <= 0 {
		return 0, &UnknownTierError{Tier: tier}
	}
	return rate, nil
}

// RatesFromConfig builds the rate table from the loaded configuration,
// keeping the built-in default wherever the config value is unset.
func RatesFromConfig(cfg config.Config) Rates {
	rates := DefaultRates()
	if cfg.BaseServiceFee > 0 {
		rates.BaseServiceFee = cfg.BaseServiceFee
	}
	if cfg.DistanceRatePerKm > 0 {
		rates.DistanceRatePerKm = cfg.DistanceRatePerKm
	}
	if cfg.BasicTierRate > 0 {
		rates.TierRates[models.TierBasic] = cfg.BasicTierRate
	}
	if cfg.PremiumTierRate > 0 {
		rates.TierRates[models.TierPremium] = cfg.PremiumTierRate
	}
	if cfg.WhiteGloveRate > 0 {
		rates.TierRates[models.TierWhiteGlove] = cfg.WhiteGloveRate
	}
	if cfg.GSTRate > 0 {
		rates.GSTRate = cfg.GSTRate
	}
	if cfg.QSTRate > 0 {
		rates.QSTRate = cfg.QSTRate
	}
	return rates
}

// RatesFromSettings overlays a persisted admin settings document onto the
// config-resolved rates, so a document that overrides one field leaves the
// configured values of the others intact. A nil document yields the
// configured rates unchanged.
func RatesFromSettings(settings *models.PricingSettings) Rates {
	rates := RatesFromConfig(config.AppConfig)
	if settings == nil {
		return rates
	}
	if settings.BaseServiceFee > 0 {
		rates.BaseServiceFee = settings.BaseServiceFee
	}
	if settings.DistanceRatePerKm > 0 {
		rates.DistanceRatePerKm = settings.DistanceRatePerKm
	}
	for name, rate := range settings.TierRates {
		tier := models.ServiceTier(name)
		if tier.Valid() && rate > 0 {
			rates.TierRates[tier] = rate
		}
	}
	if settings.GSTRate > 0 {
		rates.GSTRate = settings.GSTRate
	}
	if settings.QSTRate > 0 {
		rates.QSTRate = settings.QSTRate
	}
	return rates
}
