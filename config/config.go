package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chatbot specifics
	Intents   IntentsConfig
	Chatbot   ChatbotConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
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

type IntentsConfig struct {
	Path string // .json, .yaml or .yml
}

type ChatbotConfig struct {
	ConfidenceThreshold float64
	FallbackResponse    string
	EmptyInputResponse  string // empty means reuse FallbackResponse
	RandomSeed          uint64 // 0 seeds from the clock
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/intent-chatbot/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/intent-chatbot/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Chatbot
	cfg.Intents.Path = v.GetString("intents.path")
	cfg.Chatbot.ConfidenceThreshold = v.GetFloat64("chatbot.confidence_threshold")
	cfg.Chatbot.FallbackResponse = v.GetString("chatbot.fallback_response")
	cfg.Chatbot.EmptyInputResponse = v.GetString("chatbot.empty_input_response")
	cfg.Chatbot.RandomSeed = v.GetUint64("chatbot.random_seed")

	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("intents.path", "intents.json")
	v.SetDefault("chatbot.confidence_threshold", 0.1)
	v.SetDefault("chatbot.fallback_response", "I'm not sure I understand. Could you rephrase?")
	v.SetDefault("chatbot.empty_input_response", "")
	v.SetDefault("chatbot.random_seed", 0)

	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", "10m")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if strings.TrimSpace(cfg.Intents.Path) == "" {
		return errors.New("intents.path is required")
	}
	if t := cfg.Chatbot.ConfidenceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("chatbot.confidence_threshold must be within [0, 1], got %v", t)
	}
	if cfg.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", cfg.Cache.Size)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
