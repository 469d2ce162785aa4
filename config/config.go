package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
	Shopify   ShopifyConfig
	Cache     CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProvidersConfig holds model-provider configuration. Model identifiers are
// fixed per provider class but overridable for deployments pinned to other
// snapshots. API keys are never configured here; they arrive per request.
type ProvidersConfig struct {
	OpenAIModel      string `mapstructure:"openai_model"`
	GeminiModel      string `mapstructure:"gemini_model"`
	GeminiBaseURL    string `mapstructure:"gemini_base_url"`
	AnthropicModel   string `mapstructure:"anthropic_model"`
	AnthropicBaseURL string `mapstructure:"anthropic_base_url"`
}

// ShopifyConfig holds catalog connector configuration
type ShopifyConfig struct {
	APIVersion   string `mapstructure:"api_version"`
	DomainSuffix string `mapstructure:"domain_suffix"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/evaly/")

	v.SetEnvPrefix("EVALY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough to run
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Provider defaults
	v.SetDefault("providers.openai_model", "gpt-4o")
	v.SetDefault("providers.gemini_model", "gemini-1.5-pro")
	v.SetDefault("providers.gemini_base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("providers.anthropic_model", "claude-3-5-sonnet-20240620")
	v.SetDefault("providers.anthropic_base_url", "https://api.anthropic.com")

	// Shopify defaults
	v.SetDefault("shopify.api_version", "2024-01")
	v.SetDefault("shopify.domain_suffix", ".myshopify.com")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "15m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Shopify.APIVersion == "" {
		return fmt.Errorf("Shopify API version is required")
	}

	return nil
}
