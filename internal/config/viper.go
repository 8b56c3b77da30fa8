// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Addr        string   `mapstructure:"addr" yaml:"addr"`
		CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
	} `mapstructure:"server" yaml:"server"`

	AI struct {
		Enabled        bool     `mapstructure:"enabled" yaml:"enabled"`
		Models         []string `mapstructure:"models" yaml:"models"`
		TimeoutSeconds int      `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string   `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Classifier struct {
		FixedCostThreshold float64 `mapstructure:"fixed_cost_threshold" yaml:"fixed_cost_threshold"`
		CategoriesFile     string  `mapstructure:"categories_file" yaml:"categories_file"`
		FixedCostsFile     string  `mapstructure:"fixed_costs_file" yaml:"fixed_costs_file"`
	} `mapstructure:"classifier" yaml:"classifier"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then FINA_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finance-analyzer")
	v.AddConfigPath(".finance-analyzer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The API key is always read unprefixed from the environment.
	if config.AI.APIKey == "" {
		config.AI.APIKey = GetGeminiAPIKey()
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.models", []string{"gemini-2.0-flash", "gemini-1.5-flash", "gemini-1.5-pro"})
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("classifier.fixed_cost_threshold", 0.5)
	v.SetDefault("classifier.categories_file", "categories.yaml")
	v.SetDefault("classifier.fixed_costs_file", "fixed_costs.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if len(config.AI.Models) == 0 {
			return fmt.Errorf("ai.models must list at least one model when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	if config.Classifier.FixedCostThreshold < 0.0 || config.Classifier.FixedCostThreshold > 1.0 {
		return fmt.Errorf("classifier.fixed_cost_threshold must be between 0.0 and 1.0, got: %f", config.Classifier.FixedCostThreshold)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
