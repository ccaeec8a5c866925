// Package config provides configuration management for the application.
// It defines the harvest and logging configuration areas, their defaults,
// and validation. Values are loaded through viper from flags, environment
// variables (MAILHARVEST_*), and an optional config file.
package config

import (
	"fmt"
	"time"
)

// Default harvest configuration values.
const (
	DefaultTimeout         = 10 * time.Second
	DefaultMaxRetries      = 2
	DefaultRetryDelay      = 1 * time.Second
	DefaultMaxRetryDelay   = 30 * time.Second
	DefaultRetryMultiplier = 2.0
	DefaultDelay           = 1 * time.Second
	DefaultMaxSubpages     = 3
	DefaultUserAgent       = "mailharvest/1.0"
	DefaultScheme          = "https"
	DefaultDomainColumn    = "domain"
	// DefaultMaxBodySize caps fetched response bodies at 10MB.
	DefaultMaxBodySize = 10 * 1024 * 1024
)

// DefaultKeywords are the link keywords followed from a homepage.
var DefaultKeywords = []string{"contact", "about", "impressum", "team"}

// HarvestConfig holds crawl tuning for the harvest pipeline.
type HarvestConfig struct {
	// Timeout is the per-request timeout
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// MaxRetries is the number of retry attempts per request after the
	// initial attempt
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
	// RetryDelay is the initial backoff delay between retries
	RetryDelay time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
	// MaxRetryDelay caps the exponential backoff delay
	MaxRetryDelay time.Duration `yaml:"max_retry_delay" mapstructure:"max_retry_delay"`
	// RetryMultiplier is the exponential backoff multiplier; 1.0 gives a
	// fixed delay
	RetryMultiplier float64 `yaml:"retry_multiplier" mapstructure:"retry_multiplier"`
	// Delay is the politeness delay between requests within a domain
	Delay time.Duration `yaml:"delay" mapstructure:"delay"`
	// MaxSubpages is the breadth cap on keyword-matched subpages per domain
	MaxSubpages int `yaml:"max_subpages" mapstructure:"max_subpages"`
	// Keywords are the substrings matched against link text and URL paths
	Keywords []string `yaml:"keywords" mapstructure:"keywords"`
	// UserAgent is the user agent sent with every request
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// DefaultScheme is the scheme tried first for bare domains (http, https)
	DefaultScheme string `yaml:"default_scheme" mapstructure:"default_scheme"`
	// FallbackHTTP retries the homepage over http:// when the https://
	// attempt fails with a network-class error
	FallbackHTTP bool `yaml:"fallback_http" mapstructure:"fallback_http"`
	// FollowForms also follows form action targets as subpage candidates
	FollowForms bool `yaml:"follow_forms" mapstructure:"follow_forms"`
	// IncludeRaw matches emails over the raw markup instead of the
	// script/style-stripped document text
	IncludeRaw bool `yaml:"include_raw" mapstructure:"include_raw"`
	// DomainColumn is the input CSV header name of the domain column
	DomainColumn string `yaml:"domain_column" mapstructure:"domain_column"`
	// MaxBodySize is the maximum response body size in bytes
	MaxBodySize int64 `yaml:"max_body_size" mapstructure:"max_body_size"`
}

// NewHarvestConfig returns a harvest configuration populated with defaults.
func NewHarvestConfig() *HarvestConfig {
	return &HarvestConfig{
		Timeout:         DefaultTimeout,
		MaxRetries:      DefaultMaxRetries,
		RetryDelay:      DefaultRetryDelay,
		MaxRetryDelay:   DefaultMaxRetryDelay,
		RetryMultiplier: DefaultRetryMultiplier,
		Delay:           DefaultDelay,
		MaxSubpages:     DefaultMaxSubpages,
		Keywords:        append([]string(nil), DefaultKeywords...),
		UserAgent:       DefaultUserAgent,
		DefaultScheme:   DefaultScheme,
		FallbackHTTP:    true,
		DomainColumn:    DefaultDomainColumn,
		MaxBodySize:     DefaultMaxBodySize,
	}
}

// Validate checks the harvest configuration for invalid values.
func (c *HarvestConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must not be negative", ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry_delay must not be negative", ErrInvalidConfig)
	}
	if c.RetryMultiplier < 1 {
		return fmt.Errorf("%w: retry_multiplier must be at least 1.0", ErrInvalidConfig)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative", ErrInvalidConfig)
	}
	if c.MaxSubpages < 0 {
		return fmt.Errorf("%w: max_subpages must not be negative", ErrInvalidConfig)
	}
	if c.DefaultScheme != "http" && c.DefaultScheme != "https" {
		return fmt.Errorf("%w: default_scheme must be http or https, got %q",
			ErrInvalidConfig, c.DefaultScheme)
	}
	if c.DomainColumn == "" {
		return fmt.Errorf("%w: domain_column must not be empty", ErrInvalidConfig)
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("%w: max_body_size must be positive", ErrInvalidConfig)
	}
	return nil
}
