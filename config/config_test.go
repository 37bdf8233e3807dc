package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"elasticsearch": map[string]any{
			"url":    "http://localhost:9200",
			"apiKey": "from-yaml",
		},
		"dataset": map[string]any{
			"itemCount": 100,
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{name: "aligns with existing camelCase key", rawKey: "ELASTICSEARCH_APIKEY", expected: "elasticsearch.apiKey"},
		{name: "aligns nested numeric key", rawKey: "DATASET_ITEMCOUNT", expected: "dataset.itemCount"},
		{name: "unknown key falls back to lowercase", rawKey: "KIBANA_URL", expected: "kibana.url"},
		{name: "single segment", rawKey: "PATH", expected: "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestLoadWithEnvMergesFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := `
env:
  serviceName: test-service
elasticsearch:
  url: http://localhost:9200
  apiKey: from-yaml
dataset:
  itemCount: 500
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Chdir(dir)

	t.Setenv("ELASTICSEARCH_APIKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Elasticsearch)
	assert.Equal(t, "http://localhost:9200", cfg.Elasticsearch.URL)
	assert.Equal(t, "from-env", cfg.Elasticsearch.APIKey, "env var must override the file value")

	require.NotNil(t, cfg.Dataset)
	assert.Equal(t, 500, cfg.Dataset.ItemCount)
	assert.Equal(t, "test-service", cfg.Env.ServiceName)
}

func TestLoadWithEnvWithoutFileUsesEnvironmentOnly(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("KIBANA_URL", "http://localhost:5601")
	t.Setenv("KIBANA_APIKEY", "secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Kibana)
	assert.Equal(t, "http://localhost:5601", cfg.Kibana.URL)
	assert.Equal(t, "secret", cfg.Kibana.APIKey)
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "elasticart", cfg.Env.ServiceName)
	assert.Equal(t, "info", cfg.Env.Log.Level)

	require.NotNil(t, cfg.Dataset)
	assert.Equal(t, 10000, cfg.Dataset.ItemCount)
	assert.Equal(t, 20, cfg.Dataset.StoreCount)
	assert.Equal(t, 1500, cfg.Dataset.InventoryPerStore)
	assert.Equal(t, 2000, cfg.Dataset.RecipeCount)
	assert.Equal(t, "Las Vegas", cfg.Dataset.City)
	assert.Equal(t, "generated_data", cfg.Dataset.OutputDir)
	assert.True(t, cfg.Dataset.GenerateSeasonalItems(), "seasonal records must be on by default")
	assert.True(t, cfg.Dataset.GeneratePromotions(), "promotional offers must be on by default")

	require.NotNil(t, cfg.Loader)
	assert.Equal(t, 1000, cfg.Loader.BatchSize)
	assert.Equal(t, 4, cfg.Loader.Workers)
	assert.Equal(t, 3, cfg.Loader.MaxRetries)

	require.NotNil(t, cfg.LLM)
	assert.Equal(t, "bedrock", cfg.LLM.Provider)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	disabled := false
	cfg := &Config{
		Dataset: &DatasetConfig{ItemCount: 50, City: "Reno", Promotions: &disabled},
		Loader:  &LoaderConfig{BatchSize: 10},
	}
	cfg.applyDefaults()

	assert.Equal(t, 50, cfg.Dataset.ItemCount)
	assert.Equal(t, "Reno", cfg.Dataset.City)
	assert.False(t, cfg.Dataset.GeneratePromotions(), "explicit opt-out must survive defaulting")
	assert.True(t, cfg.Dataset.GenerateSeasonalItems())
	assert.Equal(t, 10, cfg.Loader.BatchSize)
	assert.Equal(t, 4, cfg.Loader.Workers)
}

func TestRequireElasticsearch(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	err := cfg.RequireElasticsearch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ELASTICSEARCH_URL")

	cfg.Elasticsearch = &ElasticsearchConfig{URL: "not a url", APIKey: "k"}
	err = cfg.RequireElasticsearch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ELASTICSEARCH_URL")

	cfg.Elasticsearch = &ElasticsearchConfig{URL: "http://localhost:9200", APIKey: "k"}
	require.NoError(t, cfg.RequireElasticsearch())
}

func TestRequireKibana(t *testing.T) {
	t.Parallel()

	cfg := &Config{Kibana: &KibanaConfig{URL: "http://localhost:5601"}}
	err := cfg.RequireKibana()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KIBANA_APIKEY")

	cfg.Kibana.APIKey = "k"
	require.NoError(t, cfg.RequireKibana())
}
