package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elasticart/internal/dataset"
	"elasticart/internal/domain/entity"
)

func TestRefreshDynamicRerollsInventoryOnly(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, 31)
	ds, err := gen.GenerateAll(Params{
		ItemCount:         500,
		StoreCount:        10,
		InventoryPerStore: 200,
		RecipeCount:       100,
		SeasonalItems:     true,
		Promotions:        true,
	})
	require.NoError(t, err)

	itemsBefore := make([]entity.Item, len(ds.Items))
	copy(itemsBefore, ds.Items)
	storesBefore := make([]entity.Store, len(ds.Stores))
	copy(storesBefore, ds.Stores)
	recipesBefore := len(ds.Recipes)
	seasonalBefore := len(ds.Seasonal)
	inventoryBefore := len(ds.Inventory)

	require.NoError(t, newTestGenerator(t, 999).RefreshDynamic(ds))

	// Static collections survive untouched.
	assert.Equal(t, itemsBefore, ds.Items)
	assert.Equal(t, storesBefore, ds.Stores)
	assert.Len(t, ds.Recipes, recipesBefore)
	assert.Len(t, ds.Seasonal, seasonalBefore)
	require.Len(t, ds.Inventory, inventoryBefore)

	tierByStore := make(map[string]entity.ChainTier, len(ds.Stores))
	for i := range ds.Stores {
		tierByStore[ds.Stores[i].StoreID] = ds.Stores[i].ChainTier
	}
	basePrice := make(map[string]float64, len(ds.Items))
	for i := range ds.Items {
		basePrice[ds.Items[i].ItemID] = ds.Items[i].BasePrice
	}

	for i := range ds.Inventory {
		rec := &ds.Inventory[i]

		lo, hi := tierMultiplierRange(tierByStore[rec.StoreID])
		ratio := rec.CurrentPrice / basePrice[rec.ItemID]
		assert.GreaterOrEqual(t, ratio, lo-0.02)
		assert.LessOrEqual(t, ratio, hi+0.02)

		if rec.OnSale {
			require.NotNil(t, rec.SalePrice)
			assert.Less(t, *rec.SalePrice, rec.CurrentPrice)
		} else {
			assert.Nil(t, rec.SalePrice)
			assert.Nil(t, rec.SaleEndDate)
		}
	}

	assert.NotEmpty(t, ds.Promotions)
}

func TestRefreshDynamicRejectsIncompleteDataset(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, 1)

	err := gen.RefreshDynamic(&dataset.Dataset{})
	require.Error(t, err)
}

func TestRefreshDynamicRejectsUnknownReferences(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, 1)
	stores := gen.GenerateStores(2)
	items := gen.GenerateItems(10)

	ds := &dataset.Dataset{
		Stores: stores,
		Items:  items,
		Inventory: []entity.InventoryRecord{
			{InventoryID: "INV_00000001", StoreID: "STORE_999", ItemID: items[0].ItemID},
		},
	}

	err := gen.RefreshDynamic(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")
}
