package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elasticart/internal/domain/entity"
)

func sampleDataset() *Dataset {
	sale := 2.50

	return &Dataset{
		Stores: []entity.Store{
			{StoreID: "STORE_001", StoreName: "Dice Mart Downtown", ChainName: "Dice Mart", ChainTier: entity.TierDiscount},
		},
		Items: []entity.Item{
			{ItemID: "ITEM_000001", Name: "Organic Bananas", Category: "Fresh Produce", BasePrice: 1.99, Organic: true},
			{ItemID: "ITEM_000002", Name: "Whole Milk", Category: "Dairy & Eggs", BasePrice: 3.49},
		},
		Inventory: []entity.InventoryRecord{
			{InventoryID: "INV_00000001", StoreID: "STORE_001", ItemID: "ITEM_000001", CurrentPrice: 2.99, OnSale: true, SalePrice: &sale, StockStatus: entity.StockInStock},
		},
		Nutrition: []entity.NutritionFacts{
			{ItemID: "ITEM_000001", Calories: 105, Organic: true},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ds := sampleDataset()

	require.NoError(t, Write(dir, ds))

	for _, name := range Names() {
		_, err := os.Stat(filepath.Join(dir, FileName(name)))
		require.NoError(t, err, "missing artifact for %s", name)
	}

	got, err := Read(dir)
	require.NoError(t, err)

	require.Len(t, got.Stores, 1)
	assert.Equal(t, ds.Stores[0].StoreID, got.Stores[0].StoreID)
	assert.Equal(t, ds.Stores[0].ChainTier, got.Stores[0].ChainTier)

	require.Len(t, got.Items, 2)
	assert.Equal(t, "Organic Bananas", got.Items[0].Name)
	assert.True(t, got.Items[0].Organic)

	require.Len(t, got.Inventory, 1)
	require.NotNil(t, got.Inventory[0].SalePrice)
	assert.InDelta(t, 2.50, *got.Inventory[0].SalePrice, 0.001)

	assert.Equal(t, ds.TotalRecords(), got.TotalRecords())
}

func TestWriteCollection(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ds := sampleDataset()

	require.NoError(t, WriteCollection(dir, ds, CollectionItems))

	_, err := os.Stat(filepath.Join(dir, FileName(CollectionItems)))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, FileName(CollectionStores)))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteCollectionUnknownName(t *testing.T) {
	t.Parallel()

	err := WriteCollection(t.TempDir(), sampleDataset(), "bogus")
	require.Error(t, err)
}

func TestReadToleratesMissingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, WriteCollection(dir, sampleDataset(), CollectionStores))

	got, err := Read(dir)
	require.NoError(t, err)

	assert.Len(t, got.Stores, 1)
	assert.Empty(t, got.Items)
	assert.Empty(t, got.Inventory)
}

func TestReadRejectsMalformedArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(CollectionItems)), []byte("{not json"), 0o644))

	_, err := Read(dir)
	require.Error(t, err)
}
