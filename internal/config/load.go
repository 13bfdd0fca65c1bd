package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. WORKFORCE_SERVER_PORT.
const EnvPrefix = "WORKFORCE"

var validate = validator.New()

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded into the environment first
// when present. Environment variables take precedence over values from
// config.yaml. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with an explicit directory to search for .env and config.yaml.
func LoadFrom(dir string) (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load(dir + "/.env")

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("tasks.default_priority", "MEDIUM")
	v.SetDefault("tasks.seed_staff", true)
	v.SetDefault("telemetry.otel_endpoint", "")
	v.SetDefault("telemetry.service_name", "workforce-api")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Tasks.DefaultPriority = strings.ToUpper(cfg.Tasks.DefaultPriority)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
