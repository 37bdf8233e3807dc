package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"elasticart/internal/dataset"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// batch is one bulk request's worth of documents for a single index.
type batch struct {
	index string
	docs  []any
}

// BulkLoad submits every collection of the dataset through a bounded pool
// of workers. Each batch is retried up to the configured limit with linear
// backoff; a batch that still fails is recorded and does not abort the
// remaining batches. The joined per-batch failures are returned at the end.
func (c *Client) BulkLoad(ctx context.Context, ds *dataset.Dataset) error {
	batches := c.splitBatches(ds)
	if len(batches) == 0 {
		return errors.New("dataset contains no records to load")
	}

	bar := progressbar.Default(int64(ds.TotalRecords()), "loading")

	var (
		mu       sync.Mutex
		failures []error
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.workers)

	for _, b := range batches {
		group.Go(func() error {
			if err := c.submitWithRetry(ctx, b); err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()

				return nil // other batches keep going
			}
			_ = bar.Add(len(b.docs))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return errors.WithStack(err)
	}
	_ = bar.Finish()

	if len(failures) > 0 {
		c.logger.Error("bulk load finished with failures",
			slog.Int("failed_batches", len(failures)),
			slog.Int("total_batches", len(batches)),
		)

		return errors.Wrapf(stderrors.Join(failures...), "%d of %d batches failed", len(failures), len(batches))
	}

	c.logger.Info("bulk load complete",
		slog.Int("batches", len(batches)),
		slog.Int("records", ds.TotalRecords()),
	)

	return nil
}

func (c *Client) splitBatches(ds *dataset.Dataset) []batch {
	var batches []batch
	for _, col := range ds.Collections() {
		for start := 0; start < len(col.Docs); start += c.batchSize {
			end := start + c.batchSize
			if end > len(col.Docs) {
				end = len(col.Docs)
			}
			batches = append(batches, batch{index: col.Name, docs: col.Docs[start:end]})
		}
	}

	return batches
}

func (c *Client) submitWithRetry(ctx context.Context, b batch) error {
	body, err := bulkBody(b.docs)
	if err != nil {
		return errors.Wrapf(err, "encode batch for %s", b.index)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		lastErr = c.submit(ctx, b.index, body)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}

		c.logger.Warn("bulk batch failed, retrying",
			slog.String("index", b.index),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		}
	}

	return errors.Wrapf(lastErr, "batch for %s failed after %d attempts", b.index, c.maxRetries)
}

func (c *Client) submit(ctx context.Context, index string, body []byte) error {
	res, err := c.es.Bulk(bytes.NewReader(body),
		c.es.Bulk.WithContext(ctx),
		c.es.Bulk.WithIndex(index),
	)
	if err != nil {
		return errors.Wrap(err, "bulk request")
	}
	raw := drainBody(res.Body)
	if res.IsError() {
		return errors.Errorf("bulk request: status %d: %s", res.StatusCode, raw)
	}

	var parsed struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
			Error  *struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return errors.Wrap(err, "parse bulk response")
	}
	if !parsed.Errors {
		return nil
	}

	failed := 0
	reason := ""
	for _, item := range parsed.Items {
		for _, result := range item {
			if result.Error != nil {
				failed++
				if reason == "" {
					reason = result.Error.Type + ": " + result.Error.Reason
				}
			}
		}
	}

	return errors.Errorf("bulk response reported %d failed documents (first: %s)", failed, reason)
}

// bulkBody renders the newline-delimited action/document pairs of the
// Elasticsearch bulk API.
func bulkBody(docs []any) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range docs {
		buf.WriteString(`{"index":{}}`)
		buf.WriteByte('\n')

		data, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}
