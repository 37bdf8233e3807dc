package elastic

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elasticart/internal/dataset"
	"elasticart/internal/domain/entity"
)

func bulkTestDataset(itemCount int) *dataset.Dataset {
	ds := &dataset.Dataset{
		Stores: []entity.Store{
			{StoreID: "STORE_001", StoreName: "Dice Mart Downtown", ChainTier: entity.TierDiscount},
		},
	}
	for i := 0; i < itemCount; i++ {
		ds.Items = append(ds.Items, entity.Item{
			ItemID:    "ITEM_00000" + string(rune('1'+i%9)),
			Name:      "Test Item",
			Category:  "Pantry Staples",
			BasePrice: 1.99,
		})
	}

	return ds
}

const bulkOK = `{"errors":false,"items":[]}`

func TestBulkLoadSendsNDJSONPerIndex(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	bodies := make(map[string][]string)
	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies[r.URL.Path] = append(bodies[r.URL.Path], string(body))
		mu.Unlock()
		_, _ = w.Write([]byte(bulkOK))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100, 2, 1)
	require.NoError(t, client.BulkLoad(context.Background(), bulkTestDataset(5)))

	require.Len(t, bodies, 2)
	require.Len(t, bodies["/store_locations/_bulk"], 1)
	require.Len(t, bodies["/grocery_items/_bulk"], 1)

	items := bodies["/grocery_items/_bulk"][0]
	lines := strings.Split(strings.TrimRight(items, "\n"), "\n")
	require.Len(t, lines, 10, "five action/document pairs expected")
	for i := 0; i < len(lines); i += 2 {
		assert.Equal(t, `{"index":{}}`, lines[i])
		assert.Contains(t, lines[i+1], `"item_id"`)
	}
}

func TestSplitBatchesHonorsBatchSize(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:9200", 2, 1, 1)
	batches := client.splitBatches(bulkTestDataset(5))

	// 1 store batch + ceil(5/2) item batches.
	require.Len(t, batches, 4)

	perIndex := make(map[string]int)
	for _, b := range batches {
		perIndex[b.index] += len(b.docs)
		assert.LessOrEqual(t, len(b.docs), 2)
	}
	assert.Equal(t, 1, perIndex[dataset.CollectionStores])
	assert.Equal(t, 5, perIndex[dataset.CollectionItems])
}

func TestBulkLoadRetriesFailedBatches(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		_, _ = w.Write([]byte(bulkOK))
	}))
	defer server.Close()

	ds := &dataset.Dataset{Stores: []entity.Store{{StoreID: "STORE_001"}}}

	client := newTestClient(t, server.URL, 100, 1, 3)
	require.NoError(t, client.BulkLoad(context.Background(), ds))
	assert.Equal(t, int32(2), calls.Load())
}

func TestBulkLoadReportsExhaustedBatches(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ds := &dataset.Dataset{Stores: []entity.Store{{StoreID: "STORE_001"}}}

	client := newTestClient(t, server.URL, 100, 1, 1)
	err := client.BulkLoad(context.Background(), ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 batches failed")
}

func TestBulkLoadReportsDocumentLevelErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":true,"items":[{"index":{"status":400,"error":{"type":"mapper_parsing_exception","reason":"bad field"}}}]}`))
	}))
	defer server.Close()

	ds := &dataset.Dataset{Stores: []entity.Store{{StoreID: "STORE_001"}}}

	client := newTestClient(t, server.URL, 100, 1, 1)
	err := client.BulkLoad(context.Background(), ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapper_parsing_exception")
}

func TestBulkLoadRejectsEmptyDataset(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:9200", 100, 1, 1)
	err := client.BulkLoad(context.Background(), &dataset.Dataset{})
	require.Error(t, err)
}
