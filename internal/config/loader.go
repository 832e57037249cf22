// Package config provides configuration management for the wiki CLI.
// It layers viper sources (flags, environment, config file, defaults) and
// decodes the result into a typed Config with mapstructure.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	gfconfig "github.com/fulmenhq/gofulmen/config"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wikilens/wiki/internal/core/wikiapi"
)

const (
	// AppName names the config directory and the default config file.
	AppName = "wiki"
	// EnvPrefix prefixes environment overrides, e.g. WIKI_API_URL.
	EnvPrefix = "WIKI"
)

var (
	// appConfig holds the current application configuration
	appConfig *Config
	configMu  sync.RWMutex
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.url", wikiapi.DefaultBaseURL)
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("api.user_agent", "")

	v.SetDefault("logging.level", "info")
}

// Prepare wires environment and file sources into v and reads the config file.
// A missing config file is not an error; an explicit cfgFile that cannot be
// read is. It reports the file used, if any.
func Prepare(v *viper.Viper, cfgFile string) (string, error) {
	if err := loadDotEnv(".env"); err != nil {
		return "", err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if appConfigDir := gfconfig.GetAppConfigDir(AppName); appConfigDir != "" {
			v.AddConfigPath(appConfigDir)
		}
		v.AddConfigPath("./config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && stderrors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes the settings of v into a validated Config and makes it the
// current configuration.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.API.URL = strings.TrimSpace(cfg.API.URL)
	cfg.API.UserAgent = strings.TrimSpace(cfg.API.UserAgent)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	setConfig(cfg)

	return cfg, nil
}

// Validate checks values that would otherwise fail later at request time.
func Validate(cfg *Config) error {
	if cfg == nil {
		return stderrors.New("config is nil")
	}
	if cfg.API.URL == "" {
		return stderrors.New("api.url is required")
	}
	parsed, err := url.Parse(cfg.API.URL)
	if err != nil {
		return fmt.Errorf("invalid api.url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid api.url %q: expected an absolute http(s) URL", cfg.API.URL)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("invalid api.timeout %s: must not be negative", cfg.API.Timeout)
	}
	return nil
}

// GetConfig returns the current application configuration (thread-safe)
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

// setConfig updates the current configuration (thread-safe)
func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}

// DefaultConfigPath returns the XDG-compliant path to the user config file.
func DefaultConfigPath() string {
	configDir := gfconfig.GetAppConfigDir(AppName)
	if strings.TrimSpace(configDir) == "" {
		return ""
	}
	return filepath.Join(configDir, "config.yaml")
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
