package pricing

import (
	"fmt"

	"haulify/models"
)

// catalogMap is the static inventory catalog: item identifier to display
// name, category and per-unit weight (lb) / volume (ft³). Custom items
// bypass this table entirely.
var catalogMap = map[string]models.CatalogItem{
	"queen-mattress": {DisplayName: "Queen Mattress", Category: "Bedroom", UnitWeight: 85, UnitVolume: 65},
	"king-mattress":  {DisplayName: "King Mattress", Category: "Bedroom", UnitWeight: 105, UnitVolume: 80},
	"dresser":        {DisplayName: "Dresser", Category: "Bedroom", UnitWeight: 120, UnitVolume: 30},
	"nightstand":     {DisplayName: "Nightstand", Category: "Bedroom", UnitWeight: 30, UnitVolume: 8},
	"sofa-3seat":     {DisplayName: "3-Seat Sofa", Category: "Living Room", UnitWeight: 150, UnitVolume: 90},
	"loveseat":       {DisplayName: "Loveseat", Category: "Living Room", UnitWeight: 100, UnitVolume: 60},
	"armchair":       {DisplayName: "Armchair", Category: "Living Room", UnitWeight: 60, UnitVolume: 35},
	"coffee-table":   {DisplayName: "Coffee Table", Category: "Living Room", UnitWeight: 45, UnitVolume: 15},
	"tv-stand":       {DisplayName: "TV Stand", Category: "Living Room", UnitWeight: 55, UnitVolume: 20},
	"dining-table":   {DisplayName: "Dining Table", Category: "Dining Room", UnitWeight: 110, UnitVolume: 40},
	"dining-chair":   {DisplayName: "Dining Chair", Category: "Dining Room", UnitWeight: 15, UnitVolume: 6},
	"refrigerator":   {DisplayName: "Refrigerator", Category: "Appliances", UnitWeight: 250, UnitVolume: 60},
	"washer":         {DisplayName: "Washer", Category: "Appliances", UnitWeight: 200, UnitVolume: 25},
	"dryer":          {DisplayName: "Dryer", Category: "Appliances", UnitWeight: 125, UnitVolume: 25},
	"desk":           {DisplayName: "Desk", Category: "Office", UnitWeight: 80, UnitVolume: 30},
	"bookshelf":      {DisplayName: "Bookshelf", Category: "Office", UnitWeight: 70, UnitVolume: 25},
	"box-small":      {DisplayName: "Small Box", Category: "Boxes", UnitWeight: 30, UnitVolume: 1.5},
	"box-medium":     {DisplayName: "Medium Box", Category: "Boxes", UnitWeight: 45, UnitVolume: 3},
	"box-large":      {DisplayName: "Large Box", Category: "Boxes", UnitWeight: 65, UnitVolume: 4.5},
}

// LookupCatalogItem resolves an item identifier against the static catalog.
func LookupCatalogItem(id string) (models.CatalogItem, bool) {
	entry, ok := catalogMap[id]
	return entry, ok
}

// CatalogItems returns a copy of the full catalog for UI rendering.
func CatalogItems() map[string]models.CatalogItem {
	out := make(map[string]models.CatalogItem, len(catalogMap))
	for id, entry := range catalogMap {
		out[id] = entry
	}
	return out
}

// BuildItem constructs a cart line from a catalog identifier.
func BuildItem(id string, quantity int) (models.InventoryItem, error) {
	entry, ok := catalogMap[id]
	if !ok {
		return models.InventoryItem{}, fmt.Errorf("unknown catalog item %q", id)
	}
	if quantity < 1 {
		return models.InventoryItem{}, &InvalidItemError{Name: entry.DisplayName, Reason: fmt.Sprintf("quantity %d is not positive", quantity)}
	}
	return models.InventoryItem{
		Name:       entry.DisplayName,
		Category:   entry.Category,
		UnitWeight: entry.UnitWeight,
		UnitVolume: entry.UnitVolume,
		Quantity:   quantity,
	}, nil
}

// BuildCustomItem constructs a cart line for the reserved Custom category,
// carrying the caller-declared weight and volume.
func BuildCustomItem(name string, unitWeight, unitVolume float64, quantity int) (models.InventoryItem, error) {
	item := models.InventoryItem{
		Name:       name,
		Category:   models.CategoryCustom,
		UnitWeight: unitWeight,
		UnitVolume: unitVolume,
		Quantity:   quantity,
	}
	if err := validateItem(item); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}
