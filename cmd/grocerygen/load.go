package main

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"elasticart/config"
	"elasticart/internal/dataset"
	"elasticart/internal/infra/elastic"
)

// runLoad reads the artifacts from dir and bulk-loads them into
// Elasticsearch, creating any missing indices first.
func runLoad(ctx context.Context, cfg *config.Config, logger *slog.Logger, dir string, recreate bool) error {
	if dir == "" {
		dir = cfg.Dataset.OutputDir
	}

	ds, err := dataset.Read(dir)
	if err != nil {
		return errors.Wrapf(err, "read dataset from %s", dir)
	}
	if ds.TotalRecords() == 0 {
		return errors.Errorf("no dataset artifacts found in %s, run generate first", dir)
	}

	client, err := elastic.New(cfg, logger)
	if err != nil {
		return err
	}

	if recreate {
		if err := client.DeleteIndices(ctx); err != nil {
			return errors.Wrap(err, "delete indices")
		}
	}

	if err := client.CreateIndices(ctx); err != nil {
		return errors.Wrap(err, "create indices")
	}

	logger.Info("bulk loading dataset",
		slog.String("dir", dir),
		slog.Int("total_records", ds.TotalRecords()))

	if err := client.BulkLoad(ctx, ds); err != nil {
		return errors.Wrap(err, "bulk load")
	}

	logger.Info("dataset loaded")

	return nil
}
