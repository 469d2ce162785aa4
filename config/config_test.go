package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("EVALY_SERVER_PORT")
		os.Unsetenv("EVALY_SERVER_ENVIRONMENT")
		os.Unsetenv("EVALY_SERVER_LOG_LEVEL")
		os.Unsetenv("EVALY_PROVIDERS_OPENAI_MODEL")
		os.Unsetenv("EVALY_SHOPIFY_API_VERSION")
		os.Unsetenv("EVALY_CACHE_TYPE")
		os.Unsetenv("EVALY_CACHE_REDIS_URL")
		os.Unsetenv("EVALY_CACHE_TTL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Providers.OpenAIModel != "gpt-4o" {
			t.Errorf("Providers.OpenAIModel = %s, want gpt-4o", cfg.Providers.OpenAIModel)
		}
		if cfg.Providers.GeminiModel != "gemini-1.5-pro" {
			t.Errorf("Providers.GeminiModel = %s, want gemini-1.5-pro", cfg.Providers.GeminiModel)
		}
		if cfg.Providers.AnthropicModel != "claude-3-5-sonnet-20240620" {
			t.Errorf("Providers.AnthropicModel = %s, want claude-3-5-sonnet-20240620", cfg.Providers.AnthropicModel)
		}
		if cfg.Shopify.APIVersion != "2024-01" {
			t.Errorf("Shopify.APIVersion = %s, want 2024-01", cfg.Shopify.APIVersion)
		}
		if cfg.Shopify.DomainSuffix != ".myshopify.com" {
			t.Errorf("Shopify.DomainSuffix = %s, want .myshopify.com", cfg.Shopify.DomainSuffix)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 15*time.Minute {
			t.Errorf("Cache.TTL = %v, want 15m", cfg.Cache.TTL)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EVALY_SERVER_PORT", "9090")
		os.Setenv("EVALY_SERVER_ENVIRONMENT", "production")
		os.Setenv("EVALY_PROVIDERS_OPENAI_MODEL", "gpt-4o-mini")
		os.Setenv("EVALY_CACHE_TYPE", "redis")
		os.Setenv("EVALY_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("EVALY_CACHE_TTL", "1h")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Providers.OpenAIModel != "gpt-4o-mini" {
			t.Errorf("Providers.OpenAIModel = %s, want gpt-4o-mini", cfg.Providers.OpenAIModel)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
	})

	t.Run("rejects unknown cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EVALY_CACHE_TYPE", "memcached")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want cache type error")
		}
	})

	t.Run("requires redis URL when cache type is redis", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EVALY_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want redis URL error")
		}
	})
}
