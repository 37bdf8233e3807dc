// Package elastic manages the grocery indices and bulk-loads generated
// artifacts into Elasticsearch.
package elastic

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"elasticart/config"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/pkg/errors"
)

// Client wraps the official Elasticsearch client with the loader settings.
type Client struct {
	es     *elasticsearch.Client
	logger *slog.Logger

	batchSize  int
	workers    int
	maxRetries int
}

// New builds a Client from the validated connection config.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.RequireElasticsearch(); err != nil {
		return nil, err
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.Elasticsearch.URL},
		APIKey:    cfg.Elasticsearch.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create elasticsearch client")
	}

	return &Client{
		es:         es,
		logger:     logger,
		batchSize:  cfg.Loader.BatchSize,
		workers:    cfg.Loader.Workers,
		maxRetries: cfg.Loader.MaxRetries,
	}, nil
}

// CreateIndices creates every grocery index with lookup-mode settings and
// explicit mappings. Existing indices are left in place.
func (c *Client) CreateIndices(ctx context.Context) error {
	for name, mapping := range indexMappings() {
		exists, err := c.indexExists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			c.logger.Info("index already exists", slog.String("index", name))

			continue
		}

		res, err := c.es.Indices.Create(name,
			c.es.Indices.Create.WithContext(ctx),
			c.es.Indices.Create.WithBody(strings.NewReader(mapping)),
		)
		if err != nil {
			return errors.Wrapf(err, "create index %s", name)
		}
		body := drainBody(res.Body)
		if res.IsError() {
			return errors.Errorf("create index %s: status %d: %s", name, res.StatusCode, body)
		}

		c.logger.Info("created index", slog.String("index", name))
	}

	return nil
}

// DeleteIndices removes every grocery index. A missing index is reported
// and skipped rather than treated as a failure, so a cleanup pass always
// covers the full set.
func (c *Client) DeleteIndices(ctx context.Context) error {
	for name := range indexMappings() {
		res, err := c.es.Indices.Delete([]string{name},
			c.es.Indices.Delete.WithContext(ctx),
		)
		if err != nil {
			return errors.Wrapf(err, "delete index %s", name)
		}
		body := drainBody(res.Body)

		switch {
		case res.StatusCode == 404:
			c.logger.Info("index not found, skipping", slog.String("index", name))
		case res.IsError():
			return errors.Errorf("delete index %s: status %d: %s", name, res.StatusCode, body)
		default:
			c.logger.Info("deleted index", slog.String("index", name))
		}
	}

	return nil
}

func (c *Client) indexExists(ctx context.Context, name string) (bool, error) {
	res, err := c.es.Indices.Exists([]string{name},
		c.es.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, errors.Wrapf(err, "check index %s", name)
	}
	drainBody(res.Body)

	return res.StatusCode == 200, nil
}

func drainBody(body io.ReadCloser) string {
	if body == nil {
		return ""
	}
	defer body.Close()

	data, _ := io.ReadAll(body)

	return string(data)
}
