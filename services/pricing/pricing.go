package pricing

import (
	"fmt"

	"haulify/models"
)

// ComputeQuote turns a cart, a service tier and a measured travel distance
// into an itemized, tax-inclusive quote. The computation is deterministic:
// the same inputs and rates always produce a field-identical quote.
//
// All amounts are carried at full float precision. GST and QST are both
// computed on the full subtotal, not compounded on each other.
func ComputeQuote(cart []models.InventoryItem, tier models.ServiceTier, distanceKm float64, rates Rates) (*models.Quote, error) {
	if distanceKm < 0 {
		return nil, ErrNegativeDistance
	}
	rate, err := rates.TierRate(tier)
	if err != nil {
		return nil, err
	}

	for _, item := range cart {
		if err := validateItem(item); err != nil {
			return nil, err
		}
	}

	itemCost := TotalWeight(cart) * rate
	distanceFee := distanceKm * rates.DistanceRatePerKm
	subtotal := rates.BaseServiceFee + itemCost + distanceFee
	gst := subtotal * rates.GSTRate
	qst := subtotal * rates.QSTRate

	return &models.Quote{
		BaseServiceFee: rates.BaseServiceFee,
		ItemCost:       itemCost,
		DistanceFee:    distanceFee,
		Subtotal:       subtotal,
		GST:            gst,
		QST:            qst,
		Total:          subtotal + gst + qst,
		Currency:       Currency,
	}, nil
}

// TotalWeight sums unit weight times quantity over the cart. Items must be
// validated before the sum is meaningful.
func TotalWeight(cart []models.InventoryItem) float64 {
	total := 0.0
	for _, item := range cart {
		total += item.UnitWeight * float64(item.Quantity)
	}
	return total
}

func validateItem(item models.InventoryItem) error {
	if item.UnitWeight < 0 {
		return &InvalidItemError{Name: item.Name, Reason: "negative weight"}
	}
	if item.UnitVolume < 0 {
		return &InvalidItemError{Name: item.Name, Reason: "negative volume"}
	}
	if item.Quantity < 1 {
		return &InvalidItemError{Name: item.Name, Reason: fmt.Sprintf("quantity %d is not positive", item.Quantity)}
	}
	return nil
}

// FormatAmount renders a monetary amount for display, rounded to two decimal
// places. Rounding is a presentation concern only; stored quotes keep full
// precision.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
