package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Elasticsearch is the bulk-load target cluster.
	Elasticsearch *ElasticsearchConfig `json:"elasticsearch" yaml:"elasticsearch"`

	// Kibana hosts the Agent Builder APIs.
	Kibana *KibanaConfig `json:"kibana" yaml:"kibana"`

	// LLM selects the provider backing any LLM-assisted generation path.
	LLM *LLMConfig `json:"llm" yaml:"llm"`

	// Dataset controls the synthetic catalog generator.
	Dataset *DatasetConfig `json:"dataset" yaml:"dataset"`

	// Loader controls bulk submission to Elasticsearch.
	Loader *LoaderConfig `json:"loader" yaml:"loader"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ElasticsearchConfig defines the cluster connection used by the loader.
type ElasticsearchConfig struct {
	URL    string `json:"url" yaml:"url" validate:"required,url"`
	APIKey string `json:"apiKey" yaml:"apiKey" validate:"required"`
}

// KibanaConfig defines the Kibana connection used by the Agent Builder client.
type KibanaConfig struct {
	URL    string `json:"url" yaml:"url" validate:"required,url"`
	APIKey string `json:"apiKey" yaml:"apiKey" validate:"required"`
}

// LLMConfig selects the hosted model endpoint used by downstream agents.
type LLMConfig struct {
	Provider         string `json:"provider" yaml:"provider" validate:"omitempty,oneof=bedrock openai azure"`
	InferenceProfile string `json:"inferenceProfile" yaml:"inferenceProfile"`
}

// DatasetConfig defines dataset sizes and generation parameters.
// SeasonalItems and Promotions are pointers so an explicit false survives
// the defaulting pass; both collections are generated unless opted out.
type DatasetConfig struct {
	OutputDir         string `json:"outputDir" yaml:"outputDir"`
	Seed              int64  `json:"seed" yaml:"seed"`
	ItemCount         int    `json:"itemCount" yaml:"itemCount"`
	StoreCount        int    `json:"storeCount" yaml:"storeCount"`
	InventoryPerStore int    `json:"inventoryPerStore" yaml:"inventoryPerStore"`
	RecipeCount       int    `json:"recipeCount" yaml:"recipeCount"`
	City              string `json:"city" yaml:"city"`
	SeasonalItems     *bool  `json:"seasonalItems" yaml:"seasonalItems"`
	Promotions        *bool  `json:"promotions" yaml:"promotions"`
}

// GenerateSeasonalItems reports whether seasonal records are enabled.
func (d *DatasetConfig) GenerateSeasonalItems() bool {
	return d.SeasonalItems == nil || *d.SeasonalItems
}

// GeneratePromotions reports whether promotional offers are enabled.
func (d *DatasetConfig) GeneratePromotions() bool {
	return d.Promotions == nil || *d.Promotions
}

// LoaderConfig bounds bulk-load concurrency and retries.
type LoaderConfig struct {
	BatchSize  int `json:"batchSize" yaml:"batchSize"`
	Workers    int `json:"workers" yaml:"workers"`
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`
}

// LoadWithEnv loads .yaml files through koanf, then applies environment
// variable overrides. A missing config file is not an error: generation
// works offline with defaults, and connection settings can come entirely
// from the environment.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find the config file; fall back to env-only when absent
	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile != "" {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ELASTICSEARCH_APIKEY -> elasticsearch.apiKey (not elasticsearch.apikey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "elasticart"
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}

	if c.Dataset == nil {
		c.Dataset = &DatasetConfig{}
	}
	if c.Dataset.OutputDir == "" {
		c.Dataset.OutputDir = "generated_data"
	}
	if c.Dataset.ItemCount <= 0 {
		c.Dataset.ItemCount = 10000
	}
	if c.Dataset.StoreCount <= 0 {
		c.Dataset.StoreCount = 20
	}
	if c.Dataset.InventoryPerStore <= 0 {
		c.Dataset.InventoryPerStore = 1500
	}
	if c.Dataset.RecipeCount <= 0 {
		c.Dataset.RecipeCount = 2000
	}
	if c.Dataset.City == "" {
		c.Dataset.City = "Las Vegas"
	}
	if c.Dataset.SeasonalItems == nil {
		enabled := true
		c.Dataset.SeasonalItems = &enabled
	}
	if c.Dataset.Promotions == nil {
		enabled := true
		c.Dataset.Promotions = &enabled
	}

	if c.Loader == nil {
		c.Loader = &LoaderConfig{}
	}
	if c.Loader.BatchSize <= 0 {
		c.Loader.BatchSize = 1000
	}
	if c.Loader.Workers <= 0 {
		c.Loader.Workers = 4
	}
	if c.Loader.MaxRetries <= 0 {
		c.Loader.MaxRetries = 3
	}

	if c.LLM == nil {
		c.LLM = &LLMConfig{}
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "bedrock"
	}
}

// RequireElasticsearch validates that the loader has a usable cluster
// connection, reporting the exact missing setting before any network work.
func (c *Config) RequireElasticsearch() error {
	if c.Elasticsearch == nil {
		return errors.New("missing Elasticsearch configuration: set ELASTICSEARCH_URL and ELASTICSEARCH_APIKEY")
	}

	return requireSection(c.Elasticsearch, "ELASTICSEARCH")
}

// RequireKibana validates the Agent Builder connection settings.
func (c *Config) RequireKibana() error {
	if c.Kibana == nil {
		return errors.New("missing Kibana configuration: set KIBANA_URL and KIBANA_APIKEY")
	}

	return requireSection(c.Kibana, "KIBANA")
}

func requireSection(section any, envPrefix string) error {
	err := validator.New().Struct(section)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, envPrefix+"_"+strings.ToUpper(fe.Field()))
	}

	return errors.Errorf("missing or invalid setting(s): %s", strings.Join(missing, ", "))
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
