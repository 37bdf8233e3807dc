package main

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"elasticart/config"
	"elasticart/internal/dataset"
	"elasticart/internal/generator"
)

// runRefresh re-rolls the dynamic fields (prices, sales, stock levels,
// promotions) of previously generated artifacts in place, leaving the
// static catalog untouched.
func runRefresh(ctx context.Context, cfg *config.Config, logger *slog.Logger, dir string, seed int64, load bool) error {
	if dir == "" {
		dir = cfg.Dataset.OutputDir
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ds, err := dataset.Read(dir)
	if err != nil {
		return errors.Wrapf(err, "read dataset from %s", dir)
	}
	if len(ds.Inventory) == 0 {
		return errors.Errorf("no inventory artifacts found in %s, run generate first", dir)
	}

	rng := rand.New(rand.NewSource(seed))

	gen, err := generator.New(rng, generator.DefaultTemplates())
	if err != nil {
		return errors.Wrap(err, "build generator")
	}

	if err := gen.RefreshDynamic(ds); err != nil {
		return errors.Wrap(err, "refresh dynamic fields")
	}

	if err := dataset.Write(dir, ds); err != nil {
		return errors.Wrap(err, "write refreshed dataset")
	}

	logger.Info("dynamic fields refreshed",
		slog.String("dir", dir),
		slog.Int("inventory_records", len(ds.Inventory)),
		slog.Int("promotions", len(ds.Promotions)))

	if load {
		return runLoad(ctx, cfg, logger, dir, false)
	}

	return nil
}
