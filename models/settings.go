package models

import "time"

// PricingSettings is the admin-overridable pricing configuration document.
// Absent fields fall back to the built-in defaults.
type PricingSettings struct {
	BaseServiceFee    float64            `bson:"base_service_fee" json:"baseServiceFee"`
	DistanceRatePerKm float64            `bson:"distance_rate_per_km" json:"distanceRatePerKm"`
	TierRates         map[string]float64 `bson:"tier_rates" json:"tierRates"` // keyed by ServiceTier
	GSTRate           float64            `bson:"gst_rate" json:"gstRate"`
	QSTRate           float64            `bson:"qst_rate" json:"qstRate"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}
