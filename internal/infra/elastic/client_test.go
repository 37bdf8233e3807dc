package elastic

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elasticart/config"
)

func newTestClient(t *testing.T, url string, batchSize, workers, maxRetries int) *Client {
	t.Helper()

	cfg := &config.Config{
		Elasticsearch: &config.ElasticsearchConfig{URL: url, APIKey: "test-key"},
		Loader:        &config.LoaderConfig{BatchSize: batchSize, Workers: workers, MaxRetries: maxRetries},
	}

	client, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

// esHandler wraps a handler with the product header the official client
// verifies on every response.
func esHandler(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}
}

func TestNewRequiresConnectionSettings(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Elasticsearch: &config.ElasticsearchConfig{},
		Loader:        &config.LoaderConfig{BatchSize: 10, Workers: 1, MaxRetries: 1},
	}

	_, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ELASTICSEARCH_URL")
}

func TestCreateIndicesSkipsExisting(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var created []string
	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusOK)
		case http.MethodPut:
			mu.Lock()
			created = append(created, r.URL.Path)
			mu.Unlock()
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100, 1, 1)
	require.NoError(t, client.CreateIndices(context.Background()))
	assert.Empty(t, created)
}

func TestCreateIndicesCreatesMissingWithLookupSettings(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	created := make(map[string]string)
	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			created[r.URL.Path] = string(body)
			mu.Unlock()
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100, 1, 1)
	require.NoError(t, client.CreateIndices(context.Background()))

	require.Len(t, created, len(indexMappings()))
	for name := range indexMappings() {
		body, ok := created["/"+name]
		require.True(t, ok, "index %s was not created", name)
		assert.Contains(t, body, `"index.mode": "lookup"`)
		assert.Contains(t, body, `"mappings"`)
	}
}

func TestDeleteIndicesToleratesMissing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"index_not_found_exception"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100, 1, 1)
	require.NoError(t, client.DeleteIndices(context.Background()))
}

func TestDeleteIndicesSurfacesServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(esHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"blocked"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100, 1, 1)
	err := client.DeleteIndices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
