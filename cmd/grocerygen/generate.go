package main

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"elasticart/config"
	"elasticart/internal/dataset"
	"elasticart/internal/generator"
)

type generateOptions struct {
	out       string
	seed      int64
	items     int
	stores    int
	inventory int
	recipes   int
	only      string
}

// runGenerate produces the dataset artifacts. Flag values override the
// config; zero values fall through to the configured defaults.
func runGenerate(cfg *config.Config, logger *slog.Logger, opts generateOptions) error {
	out := opts.out
	if out == "" {
		out = cfg.Dataset.OutputDir
	}

	seed := opts.seed
	if seed == 0 {
		seed = cfg.Dataset.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := generator.Params{
		ItemCount:         cfg.Dataset.ItemCount,
		StoreCount:        cfg.Dataset.StoreCount,
		InventoryPerStore: cfg.Dataset.InventoryPerStore,
		RecipeCount:       cfg.Dataset.RecipeCount,
		SeasonalItems:     cfg.Dataset.GenerateSeasonalItems(),
		Promotions:        cfg.Dataset.GeneratePromotions(),
	}
	if opts.items > 0 {
		params.ItemCount = opts.items
	}
	if opts.stores > 0 {
		params.StoreCount = opts.stores
	}
	if opts.inventory > 0 {
		params.InventoryPerStore = opts.inventory
	}
	if opts.recipes > 0 {
		params.RecipeCount = opts.recipes
	}

	if opts.only != "" && !validCollection(opts.only) {
		return errors.Errorf("unknown collection %q, expected one of %v", opts.only, dataset.Names())
	}

	logger.Info("generating dataset",
		slog.Int64("seed", seed),
		slog.Int("items", params.ItemCount),
		slog.Int("stores", params.StoreCount),
		slog.Int("inventory_per_store", params.InventoryPerStore),
		slog.String("output_dir", out))

	rng := rand.New(rand.NewSource(seed))

	tmpl := generator.DefaultTemplates()
	if cfg.Dataset.City != "" {
		tmpl.City = cfg.Dataset.City
	}

	gen, err := generator.New(rng, tmpl)
	if err != nil {
		return errors.Wrap(err, "build generator")
	}

	if opts.only != "" {
		ds, err := generateCollection(gen, params, opts.only)
		if err != nil {
			return errors.Wrapf(err, "generate collection %s", opts.only)
		}
		if err := dataset.WriteCollection(out, ds, opts.only); err != nil {
			return errors.Wrapf(err, "write collection %s", opts.only)
		}

		logger.Info("collection written", slog.String("collection", opts.only))

		return nil
	}

	ds, err := gen.GenerateAll(params)
	if err != nil {
		return errors.Wrap(err, "generate dataset")
	}

	if err := dataset.Write(out, ds); err != nil {
		return errors.Wrap(err, "write dataset")
	}

	logger.Info("dataset written", slog.Int("total_records", ds.TotalRecords()))

	return nil
}

// generateCollection produces just the requested collection and the
// upstream collections it references, skipping everything downstream.
func generateCollection(gen *generator.Generator, p generator.Params, name string) (*dataset.Dataset, error) {
	ds := &dataset.Dataset{}

	switch name {
	case dataset.CollectionStores:
		ds.Stores = gen.GenerateStores(p.StoreCount)
	case dataset.CollectionItems:
		ds.Items = gen.GenerateItems(p.ItemCount)
	case dataset.CollectionInventory:
		ds.Stores = gen.GenerateStores(p.StoreCount)
		ds.Items = gen.GenerateItems(p.ItemCount)
		ds.Inventory = gen.GenerateInventory(ds.Stores, ds.Items, p.InventoryPerStore)
	case dataset.CollectionNutrition:
		ds.Items = gen.GenerateItems(p.ItemCount)
		ds.Nutrition = gen.GenerateNutrition(ds.Items)
	case dataset.CollectionPromotions:
		ds.Stores = gen.GenerateStores(p.StoreCount)
		ds.Items = gen.GenerateItems(p.ItemCount)
		ds.Promotions = gen.GeneratePromotions(ds.Items, ds.Stores)
	case dataset.CollectionSeasonal:
		ds.Items = gen.GenerateItems(p.ItemCount)
		ds.Seasonal = gen.GenerateSeasonal(ds.Items)
	case dataset.CollectionRecipes:
		ds.Items = gen.GenerateItems(p.ItemCount)
		ds.Recipes = gen.GenerateRecipes(ds.Items, p.RecipeCount)
	default:
		return nil, errors.Errorf("unknown collection %q", name)
	}

	return ds, nil
}

func validCollection(name string) bool {
	for _, n := range dataset.Names() {
		if n == name {
			return true
		}
	}

	return false
}
