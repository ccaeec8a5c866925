package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	// Harvest holds crawl tuning for the harvest pipeline
	Harvest *HarvestConfig `yaml:"harvest" mapstructure:"harvest"`
	// Logging holds logging configuration
	Logging *LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// New returns a configuration populated with defaults.
func New() *Config {
	return &Config{
		Harvest: NewHarvestConfig(),
		Logging: NewLoggingConfig(),
	}
}

// SetDefaults registers default values on the given viper instance.
// Defaults are only used when neither flags, environment variables, nor the
// config file provide a value.
func SetDefaults(v *viper.Viper) {
	defaults := New()

	v.SetDefault("harvest.timeout", defaults.Harvest.Timeout)
	v.SetDefault("harvest.max_retries", defaults.Harvest.MaxRetries)
	v.SetDefault("harvest.retry_delay", defaults.Harvest.RetryDelay)
	v.SetDefault("harvest.max_retry_delay", defaults.Harvest.MaxRetryDelay)
	v.SetDefault("harvest.retry_multiplier", defaults.Harvest.RetryMultiplier)
	v.SetDefault("harvest.delay", defaults.Harvest.Delay)
	v.SetDefault("harvest.max_subpages", defaults.Harvest.MaxSubpages)
	v.SetDefault("harvest.keywords", defaults.Harvest.Keywords)
	v.SetDefault("harvest.user_agent", defaults.Harvest.UserAgent)
	v.SetDefault("harvest.default_scheme", defaults.Harvest.DefaultScheme)
	v.SetDefault("harvest.fallback_http", defaults.Harvest.FallbackHTTP)
	v.SetDefault("harvest.follow_forms", defaults.Harvest.FollowForms)
	v.SetDefault("harvest.include_raw", defaults.Harvest.IncludeRaw)
	v.SetDefault("harvest.domain_column", defaults.Harvest.DomainColumn)
	v.SetDefault("harvest.max_body_size", defaults.Harvest.MaxBodySize)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.encoding", defaults.Logging.Encoding)
	v.SetDefault("logging.output", defaults.Logging.Output)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	v.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load unmarshals and validates the configuration from the given viper
// instance. SetDefaults must have been called on it beforehand.
func Load(v *viper.Viper) (*Config, error) {
	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates every configuration area.
func (c *Config) Validate() error {
	if err := c.Harvest.Validate(); err != nil {
		return fmt.Errorf("harvest: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
