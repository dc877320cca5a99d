package models

// ServiceTier identifies one of the fixed service levels. The set is closed:
// anything outside the three constants is rejected by the pricing engine.
type ServiceTier string

const (
	TierBasic      ServiceTier = "Basic"
	TierPremium    ServiceTier = "Premium"
	TierWhiteGlove ServiceTier = "WhiteGlove"
)

// Valid reports whether the tier is one of the closed enumeration.
func (t ServiceTier) Valid() bool {
	switch t {
	case TierBasic, TierPremium, TierWhiteGlove:
		return true
	}
	return false
}

// Quote is the itemized, tax-inclusive price breakdown for a cart, tier and
// travel distance. All amounts are carried at full float precision; rounding
// happens only when amounts are formatted for display.
type Quote struct {
	BaseServiceFee float64 `bson:"base_service_fee" json:"baseServiceFee"`
	ItemCost       float64 `bson:"item_cost" json:"itemCost"`
	DistanceFee    float64 `bson:"distance_fee" json:"distanceFee"`
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
	GST            float64 `bson:"gst" json:"gst"`
	QST            float64 `bson:"qst" json:"qst"`
	Total          float64 `bson:"total" json:"total"`
	Currency       string  `bson:"currency" json:"currency"`
}
