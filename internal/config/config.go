package config

import "time"

// Config represents the complete application configuration.
// Values resolve in order: flags, WIKI_* environment variables, config file, defaults.
type Config struct {
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// APIConfig contains MediaWiki API client configuration
type APIConfig struct {
	// URL is the action API endpoint, e.g. https://en.wikipedia.org/w/api.php
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout bounds the single request; zero leaves the HTTP client default (no timeout)
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// UserAgent is sent only when set
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	// Level controls the minimum log level
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
}
