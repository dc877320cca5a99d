package pricing

import (
	"testing"

	"haulify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCart() []models.InventoryItem {
	return []models.InventoryItem{
		{Name: "3-Seat Sofa", Category: "Living Room", UnitWeight: 150, UnitVolume: 90, Quantity: 1},
		{Name: "Medium Box", Category: "Boxes", UnitWeight: 45, UnitVolume: 3, Quantity: 10},
	}
}

func TestComputeQuoteQueenMattressScenario(t *testing.T) {
	cart := []models.InventoryItem{
		{Name: "Queen Mattress", Category: "Bedroom", UnitWeight: 85, UnitVolume: 65, Quantity: 1},
	}

	quote, err := ComputeQuote(cart, models.TierPremium, 20, DefaultRates())
	require.NoError(t, err)

	assert.InDelta(t, 50.0, quote.BaseServiceFee, 1e-9)
	assert.InDelta(t, 32.30, quote.ItemCost, 1e-9)
	assert.InDelta(t, 52.80, quote.DistanceFee, 1e-9)
	assert.InDelta(t, 135.10, quote.Subtotal, 1e-9)
	assert.InDelta(t, 6.755, quote.GST, 1e-9)
	assert.InDelta(t, 13.471875, quote.QST, 1e-9)
	assert.InDelta(t, 155.326875, quote.Total, 1e-9)
	assert.Equal(t, Currency, quote.Currency)
}

func TestComputeQuoteDeterminism(t *testing.T) {
	cart := testCart()

	first, err := ComputeQuote(cart, models.TierWhiteGlove, 37.5, DefaultRates())
	require.NoError(t, err)
	second, err := ComputeQuote(cart, models.TierWhiteGlove, 37.5, DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeQuoteReconciliation(t *testing.T) {
	testCases := []struct {
		name     string
		cart     []models.InventoryItem
		tier     models.ServiceTier
		distance float64
	}{
		{"typical move", testCart(), models.TierBasic, 12.4},
		{"heavy move", testCart(), models.TierWhiteGlove, 250},
		{"zero distance", testCart(), models.TierPremium, 0},
		{"empty cart", nil, models.TierPremium, 15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := ComputeQuote(tc.cart, tc.tier, tc.distance, DefaultRates())
			require.NoError(t, err)

			assert.InDelta(t, quote.BaseServiceFee+quote.ItemCost+quote.DistanceFee, quote.Subtotal, 1e-9)
			assert.InDelta(t, quote.Subtotal+quote.GST+quote.QST, quote.Total, 1e-9)
		})
	}
}

func TestComputeQuoteZeroCart(t *testing.T) {
	quote, err := ComputeQuote(nil, models.TierBasic, 0, DefaultRates())
	require.NoError(t, err)

	assert.Zero(t, quote.ItemCost)
	assert.Zero(t, quote.DistanceFee)
	assert.InDelta(t, DefaultBaseServiceFee, quote.Subtotal, 1e-9)
	assert.InDelta(t, DefaultBaseServiceFee*DefaultGSTRate, quote.GST, 1e-9)
	assert.InDelta(t, DefaultBaseServiceFee*DefaultQSTRate, quote.QST, 1e-9)
}

func TestComputeQuoteMonotonicity(t *testing.T) {
	base := testCart()
	baseline, err := ComputeQuote(base, models.TierPremium, 20, DefaultRates())
	require.NoError(t, err)

	// Increasing one item's quantity never decreases item cost or total.
	bumped := testCart()
	bumped[1].Quantity++
	bumpedQuote, err := ComputeQuote(bumped, models.TierPremium, 20, DefaultRates())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bumpedQuote.ItemCost, baseline.ItemCost)
	assert.GreaterOrEqual(t, bumpedQuote.Total, baseline.Total)

	// Increasing distance never decreases distance fee or total.
	farther, err := ComputeQuote(base, models.TierPremium, 21, DefaultRates())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, farther.DistanceFee, baseline.DistanceFee)
	assert.GreaterOrEqual(t, farther.Total, baseline.Total)
}

func TestComputeQuoteTierRates(t *testing.T) {
	cart := []models.InventoryItem{
		{Name: "Desk", Category: "Office", UnitWeight: 100, UnitVolume: 30, Quantity: 1},
	}

	testCases := []struct {
		tier models.ServiceTier
		want float64
	}{
		{models.TierBasic, 35.0},
		{models.TierPremium, 38.0},
		{models.TierWhiteGlove, 41.0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.tier), func(t *testing.T) {
			quote, err := ComputeQuote(cart, tc.tier, 0, DefaultRates())
			require.NoError(t, err)
			assert.InDelta(t, tc.want, quote.ItemCost, 1e-9)
		})
	}
}

func TestComputeQuoteUnknownTier(t *testing.T) {
	_, err := ComputeQuote(testCart(), models.ServiceTier("Platinum"), 10, DefaultRates())
	require.Error(t, err)

	var tierErr *UnknownTierError
	require.ErrorAs(t, err, &tierErr)
	assert.Equal(t, models.ServiceTier("Platinum"), tierErr.Tier)
}

func TestComputeQuoteInvalidItems(t *testing.T) {
	testCases := []struct {
		name string
		item models.InventoryItem
	}{
		{"negative weight", models.InventoryItem{Name: "Mirror", UnitWeight: -5, UnitVolume: 2, Quantity: 1}},
		{"negative volume", models.InventoryItem{Name: "Mirror", UnitWeight: 5, UnitVolume: -2, Quantity: 1}},
		{"zero quantity", models.InventoryItem{Name: "Mirror", UnitWeight: 5, UnitVolume: 2, Quantity: 0}},
		{"negative quantity", models.InventoryItem{Name: "Mirror", UnitWeight: 5, UnitVolume: 2, Quantity: -3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeQuote([]models.InventoryItem{tc.item}, models.TierBasic, 0, DefaultRates())
			var itemErr *InvalidItemError
			require.ErrorAs(t, err, &itemErr)
			assert.Equal(t, "Mirror", itemErr.Name)
		})
	}
}

func TestComputeQuoteNegativeDistance(t *testing.T) {
	_, err := ComputeQuote(testCart(), models.TierBasic, -1, DefaultRates())
	assert.ErrorIs(t, err, ErrNegativeDistance)
}

func TestComputeQuoteCustomItemUsesDeclaredWeight(t *testing.T) {
	item, err := BuildCustomItem("Grand Piano", 700, 120, 1)
	require.NoError(t, err)

	quote, err := ComputeQuote([]models.InventoryItem{item}, models.TierBasic, 0, DefaultRates())
	require.NoError(t, err)
	assert.InDelta(t, 700*DefaultBasicRate, quote.ItemCost, 1e-9)
}

func TestRatesFromSettingsOverlay(t *testing.T) {
	rates := RatesFromSettings(&models.PricingSettings{
		BaseServiceFee: 60,
		TierRates:      map[string]float64{"Premium": 0.40, "Platinum": 0.99},
	})

	assert.InDelta(t, 60.0, rates.BaseServiceFee, 1e-9)
	assert.InDelta(t, 0.40, rates.TierRates[models.TierPremium], 1e-9)
	// Unknown tier names in the settings document are ignored.
	assert.NotContains(t, rates.TierRates, models.ServiceTier("Platinum"))
	// Untouched fields keep their defaults.
	assert.InDelta(t, DefaultDistanceRatePerKm, rates.DistanceRatePerKm, 1e-9)
	assert.InDelta(t, DefaultQSTRate, rates.QSTRate, 1e-9)
}

func TestTotalWeight(t *testing.T) {
	assert.Zero(t, TotalWeight(nil))
	// 150 + 10*45
	assert.InDelta(t, 600.0, TotalWeight(testCart()), 1e-9)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "155.33", FormatAmount(155.326875))
	assert.Equal(t, "50.00", FormatAmount(50))
}
