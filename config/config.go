package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Diary agent specifics
	Agent     AgentConfig
	Knowledge KnowledgeConfig
	Voyage    VoyageConfig
	Imagen    ImagenConfig
	Storage   StorageConfig
	Reports   ReportsConfig

	// LLM provider abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AgentConfig tunes the orchestration core.
type AgentConfig struct {
	Timezone            string
	ClassifierThreshold float64 // below this LLM confidence, classify as statement
	ClassifierCacheSize int
	RateLimitPerMin     int
}

// KnowledgeConfig points at the Qdrant-backed diary knowledge base.
type KnowledgeConfig struct {
	QdrantURL      string
	CollectionName string
	VectorSize     int
	SearchLimit    int
}

type VoyageConfig struct {
	APIKey string
}

// ImagenConfig configures the image synthesis backend.
type ImagenConfig struct {
	APIKey string
	Model  string
	Width  int
	Height int
}

// StorageConfig configures the object storage bucket for persisted images.
type StorageConfig struct {
	Bucket          string
	CredentialsPath string
}

// ReportsConfig configures the local report store.
type ReportsConfig struct {
	DataDir string
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Agent core
	cfg.Agent.Timezone = viper.GetString("agent.timezone")
	cfg.Agent.ClassifierThreshold = viper.GetFloat64("agent.classifier_threshold")
	cfg.Agent.ClassifierCacheSize = viper.GetInt("agent.classifier_cache_size")
	cfg.Agent.RateLimitPerMin = viper.GetInt("agent.rate_limit_per_min")

	// Knowledge base
	cfg.Knowledge.QdrantURL = viper.GetString("knowledge.qdrant_url")
	cfg.Knowledge.CollectionName = viper.GetString("knowledge.collection_name")
	cfg.Knowledge.VectorSize = viper.GetInt("knowledge.vector_size")
	cfg.Knowledge.SearchLimit = viper.GetInt("knowledge.search_limit")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Knowledge.QdrantURL = qdrantURL
	}

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Image synthesis
	cfg.Imagen.APIKey = expandEnvVar(viper.GetString("imagen.api_key"))
	cfg.Imagen.Model = viper.GetString("imagen.model")
	cfg.Imagen.Width = viper.GetInt("imagen.width")
	cfg.Imagen.Height = viper.GetInt("imagen.height")

	// Object storage
	cfg.Storage.Bucket = viper.GetString("storage.bucket")
	cfg.Storage.CredentialsPath = viper.GetString("storage.credentials_path")
	if creds := viper.GetString("storage_credentials"); creds != "" {
		cfg.Storage.CredentialsPath = creds
	}

	// Report store
	cfg.Reports.DataDir = viper.GetString("reports.data_dir")

	// LLM provider abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("agent.timezone", "Asia/Seoul")
	viper.SetDefault("agent.classifier_threshold", 0.6)
	viper.SetDefault("agent.classifier_cache_size", 512)
	viper.SetDefault("agent.rate_limit_per_min", 120)

	viper.SetDefault("knowledge.collection_name", "diary_entries")
	viper.SetDefault("knowledge.vector_size", 1024)
	viper.SetDefault("knowledge.search_limit", 5)

	viper.SetDefault("imagen.model", "imagen-3.0-generate-002")
	viper.SetDefault("imagen.width", 1024)
	viper.SetDefault("imagen.height", 1280)

	viper.SetDefault("reports.data_dir", "./data")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
