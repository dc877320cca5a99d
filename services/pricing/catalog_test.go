package pricing

import (
	"testing"

	"haulify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItemFromCatalog(t *testing.T) {
	item, err := BuildItem("queen-mattress", 2)
	require.NoError(t, err)

	assert.Equal(t, "Queen Mattress", item.Name)
	assert.Equal(t, "Bedroom", item.Category)
	assert.InDelta(t, 85.0, item.UnitWeight, 1e-9)
	assert.InDelta(t, 65.0, item.UnitVolume, 1e-9)
	assert.Equal(t, 2, item.Quantity)
}

func TestBuildItemUnknownID(t *testing.T) {
	_, err := BuildItem("hover-board", 1)
	assert.Error(t, err)
}

func TestBuildItemRejectsNonPositiveQuantity(t *testing.T) {
	_, err := BuildItem("dresser", 0)
	var itemErr *InvalidItemError
	assert.ErrorAs(t, err, &itemErr)
}

func TestBuildCustomItemValidation(t *testing.T) {
	item, err := BuildCustomItem("Antique Safe", 300, 12, 1)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryCustom, item.Category)

	_, err = BuildCustomItem("Antique Safe", -300, 12, 1)
	var itemErr *InvalidItemError
	assert.ErrorAs(t, err, &itemErr)
}

func TestCartMergesByName(t *testing.T) {
	var cart models.Cart

	first, err := BuildItem("box-medium", 3)
	require.NoError(t, err)
	second, err := BuildItem("box-medium", 2)
	require.NoError(t, err)

	cart.Add(first)
	cart.Add(second)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Quantity("Medium Box"))

	cart.Remove("Medium Box", 5)
	assert.True(t, cart.IsEmpty())
}

func TestCatalogItemsIsACopy(t *testing.T) {
	items := CatalogItems()
	items["queen-mattress"] = models.CatalogItem{DisplayName: "Tampered"}

	entry, ok := LookupCatalogItem("queen-mattress")
	require.True(t, ok)
	assert.Equal(t, "Queen Mattress", entry.DisplayName)
}
