package models

// CategoryCustom is the reserved category for user-configured items that
// bypass the catalog and carry caller-declared weight and volume.
const CategoryCustom = "Custom"

// InventoryItem represents one line in a customer's moving cart.
type InventoryItem struct {
	Name       string  `bson:"name" json:"name"`
	Category   string  `bson:"category" json:"category"`
	UnitWeight float64 `bson:"unit_weight" json:"unitWeight"` // pounds per unit
	UnitVolume float64 `bson:"unit_volume" json:"unitVolume"` // cubic feet per unit
	Quantity   int     `bson:"quantity" json:"quantity"`
}

// CatalogItem is the static catalog entry an item identifier resolves to.
type CatalogItem struct {
	DisplayName string  `json:"displayName"`
	Category    string  `json:"category"`
	UnitWeight  float64 `json:"unitWeight"`
	UnitVolume  float64 `json:"unitVolume"`
}

// Cart is a multiset of inventory items keyed by item name. Adding an item
// that is already present increments its quantity instead of duplicating it.
type Cart struct {
	Items []InventoryItem `json:"items"`
}

// Add merges an item into the cart by name.
func (c *Cart) Add(item InventoryItem) {
	for i := range c.Items {
		if c.Items[i].Name == item.Name {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove decrements the named item's quantity, dropping the line once it
// reaches zero.
func (c *Cart) Remove(name string, quantity int) {
	for i := range c.Items {
		if c.Items[i].Name != name {
			continue
		}
		c.Items[i].Quantity -= quantity
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// Quantity returns the quantity of the named item, zero if absent.
func (c *Cart) Quantity(name string) int {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return c.Items[i].Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
