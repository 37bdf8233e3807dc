package main

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elasticart/config"
	"elasticart/internal/dataset"
	"elasticart/internal/generator"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunGenerateDefaultsIncludeOptionalCollections(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.New()
	require.NoError(t, err)

	out := t.TempDir()
	opts := generateOptions{out: out, seed: 42, items: 500, stores: 5, inventory: 50, recipes: 50}
	require.NoError(t, runGenerate(cfg, discardLogger(), opts))

	ds, err := dataset.Read(out)
	require.NoError(t, err)

	assert.NotEmpty(t, ds.Promotions, "an out-of-the-box run must produce promotional offers")
	assert.NotEmpty(t, ds.Seasonal, "an out-of-the-box run must produce seasonal records")
	assert.NotEmpty(t, ds.Recipes)
}

func TestRunGenerateUsesConfiguredCity(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.New()
	require.NoError(t, err)
	cfg.Dataset.City = "Reno"

	out := t.TempDir()
	opts := generateOptions{out: out, seed: 42, only: dataset.CollectionStores}
	require.NoError(t, runGenerate(cfg, discardLogger(), opts))

	ds, err := dataset.Read(out)
	require.NoError(t, err)

	require.NotEmpty(t, ds.Stores)
	for i := range ds.Stores {
		assert.Equal(t, "Reno", ds.Stores[i].Address.City)
	}
}

func TestGenerateCollectionScopesToRequest(t *testing.T) {
	t.Parallel()

	params := generator.Params{
		ItemCount:         200,
		StoreCount:        5,
		InventoryPerStore: 20,
		RecipeCount:       20,
		SeasonalItems:     true,
		Promotions:        true,
	}

	newGen := func(t *testing.T) *generator.Generator {
		t.Helper()

		gen, err := generator.New(rand.New(rand.NewSource(3)), generator.DefaultTemplates())
		require.NoError(t, err)

		return gen
	}

	t.Run("stores only", func(t *testing.T) {
		t.Parallel()

		ds, err := generateCollection(newGen(t), params, dataset.CollectionStores)
		require.NoError(t, err)

		assert.NotEmpty(t, ds.Stores)
		assert.Empty(t, ds.Items)
		assert.Empty(t, ds.Inventory)
		assert.Empty(t, ds.Promotions)
	})

	t.Run("seasonal pulls in items but not stores", func(t *testing.T) {
		t.Parallel()

		ds, err := generateCollection(newGen(t), params, dataset.CollectionSeasonal)
		require.NoError(t, err)

		assert.NotEmpty(t, ds.Items)
		assert.NotEmpty(t, ds.Seasonal)
		assert.Empty(t, ds.Stores)
		assert.Empty(t, ds.Inventory)
	})

	t.Run("inventory pulls in stores and items", func(t *testing.T) {
		t.Parallel()

		ds, err := generateCollection(newGen(t), params, dataset.CollectionInventory)
		require.NoError(t, err)

		require.NotEmpty(t, ds.Stores)
		require.NotEmpty(t, ds.Items)
		assert.Len(t, ds.Inventory, len(ds.Stores)*params.InventoryPerStore)
	})

	t.Run("unknown collection", func(t *testing.T) {
		t.Parallel()

		_, err := generateCollection(newGen(t), params, "bogus")
		require.Error(t, err)
	})
}
