package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikilens/wiki/internal/core/wikiapi"
)

// isolate keeps user config, .env files and WIKI_* variables out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WIKI_API_URL", "")
	t.Setenv("WIKI_API_TIMEOUT", "")
	t.Setenv("WIKI_API_USER_AGENT", "")
	t.Setenv("WIKI_LOGGING_LEVEL", "")
	for _, key := range []string{"WIKI_API_URL", "WIKI_API_TIMEOUT", "WIKI_API_USER_AGENT", "WIKI_LOGGING_LEVEL"} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	v := viper.New()
	used, err := Prepare(v, "")
	require.NoError(t, err)
	assert.Equal(t, "", used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, wikiapi.DefaultBaseURL, cfg.API.URL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, "", cfg.API.UserAgent)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Same(t, cfg, GetConfig())
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "wiki.yaml")
	writeFile(t, path, "api:\n  url: https://de.wikipedia.org/w/api.php\n  timeout: 15s\n  user_agent: wiki-test/1.0\nlogging:\n  level: debug\n")

	v := viper.New()
	used, err := Prepare(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://de.wikipedia.org/w/api.php", cfg.API.URL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "wiki-test/1.0", cfg.API.UserAgent)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadLocalConfigDir(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll("config", 0o755))
	writeFile(t, filepath.Join("config", "config.yaml"), "api:\n  timeout: 2s\n")

	v := viper.New()
	used, err := Prepare(v, "")
	require.NoError(t, err)
	assert.NotEmpty(t, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, wikiapi.DefaultBaseURL, cfg.API.URL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "wiki.yaml")
	writeFile(t, path, "api:\n  url: https://de.wikipedia.org/w/api.php\n")
	t.Setenv("WIKI_API_URL", "https://fr.wikipedia.org/w/api.php")
	t.Setenv("WIKI_API_TIMEOUT", "3s")

	v := viper.New()
	_, err := Prepare(v, path)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://fr.wikipedia.org/w/api.php", cfg.API.URL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
}

func TestLoadOverrideWinsOverEnv(t *testing.T) {
	isolate(t)
	t.Setenv("WIKI_API_URL", "https://fr.wikipedia.org/w/api.php")

	v := viper.New()
	_, err := Prepare(v, "")
	require.NoError(t, err)
	v.Set("api.url", "https://it.wikipedia.org/w/api.php")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://it.wikipedia.org/w/api.php", cfg.API.URL)
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	writeFile(t, ".env", "WIKI_API_USER_AGENT=dotenv-agent/2.0\n")
	t.Cleanup(func() { _ = os.Unsetenv("WIKI_API_USER_AGENT") })

	v := viper.New()
	_, err := Prepare(v, "")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-agent/2.0", cfg.API.UserAgent)
}

func TestPrepareMissingExplicitFile(t *testing.T) {
	isolate(t)

	v := viper.New()
	_, err := Prepare(v, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := &Config{API: APIConfig{URL: wikiapi.DefaultBaseURL}}
	require.NoError(t, Validate(valid))

	cases := map[string]*Config{
		"nil":          nil,
		"empty url":    {API: APIConfig{URL: ""}},
		"relative url": {API: APIConfig{URL: "/w/api.php"}},
		"bad scheme":   {API: APIConfig{URL: "ftp://example.org/api.php"}},
		"negative":     {API: APIConfig{URL: wikiapi.DefaultBaseURL, Timeout: -time.Second}},
	}
	for name, cfg := range cases {
		require.Error(t, Validate(cfg), name)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := DefaultConfigPath()
	require.NotEmpty(t, path)
	assert.Equal(t, "config.yaml", filepath.Base(path))
}
