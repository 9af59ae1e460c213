package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points ROADPATH_CONFIG at a file in a fresh directory and clears
// every override.
func isolate(t *testing.T, yamlBody string) {
	t.Helper()
	for _, k := range []string{
		"ROADPATH_ADDR", "ROADPATH_DATASET", "ROADPATH_LOG_LEVEL", "ROADPATH_LOG_PRETTY",
		"ROADPATH_ALLOW_ORIGINS", "ROADPATH_MAX_SPEED_KPH", "ROADPATH_QUERY_TIMEOUT_MS",
	} {
		t.Setenv(k, "")
	}
	path := filepath.Join(t.TempDir(), "roadpath.yaml")
	if yamlBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))
		t.Setenv("ROADPATH_CONFIG", path)
		return
	}
	t.Setenv("ROADPATH_CONFIG", "")
}

func TestDefaults(t *testing.T) {
	isolate(t, "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "graph.json", c.Dataset.Path)
	assert.Equal(t, 150.0, c.Search.MaxSpeedKPH)
	assert.True(t, c.Search.Calibrate)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 10*time.Second, c.QueryTimeout())
	assert.NoError(t, c.Validate())
}

func TestYAML(t *testing.T) {
	isolate(t, `
server:
  addr: ":9000"
  query_timeout_ms: 250
dataset:
  path: /data/florida.json
  cache: false
search:
  max_speed_kph: 120
logging:
  level: debug
  pretty: true
`)
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Server.Addr)
	assert.Equal(t, 250*time.Millisecond, c.QueryTimeout())
	assert.Equal(t, "/data/florida.json", c.Dataset.Path)
	assert.False(t, c.Dataset.Cache)
	assert.Equal(t, 120.0, c.Search.MaxSpeedKPH)
	assert.True(t, c.Search.Calibrate, "unset keys keep their default")
	assert.True(t, c.Logging.Pretty)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t, "server:\n  addr: \":9000\"\n")
	t.Setenv("ROADPATH_ADDR", ":7000")
	t.Setenv("ROADPATH_DATASET", "tampa.json")
	t.Setenv("ROADPATH_MAX_SPEED_KPH", "90.5")
	t.Setenv("ROADPATH_QUERY_TIMEOUT_MS", "1500")
	t.Setenv("ROADPATH_ALLOW_ORIGINS", "https://a.example, https://b.example")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", c.Server.Addr)
	assert.Equal(t, "tampa.json", c.Dataset.Path)
	assert.Equal(t, 90.5, c.Search.MaxSpeedKPH)
	assert.Equal(t, 1500*time.Millisecond, c.QueryTimeout())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.Server.AllowOrigins)
}

func TestLoadErrors(t *testing.T) {
	isolate(t, "server: [unterminated")
	_, err := Load()
	assert.Error(t, err)

	isolate(t, "")
	t.Setenv("ROADPATH_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load()
	assert.ErrorIs(t, err, os.ErrNotExist, "an explicitly named file must exist")

	isolate(t, "")
	t.Setenv("ROADPATH_MAX_SPEED_KPH", "fast")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	breakers := map[string]func(*Config){
		"addr":    func(c *Config) { c.Server.Addr = "" },
		"dataset": func(c *Config) { c.Dataset.Path = "" },
		"speed":   func(c *Config) { c.Search.MaxSpeedKPH = 0 },
		"timeout": func(c *Config) { c.Server.QueryTimeoutMs = -1 },
	}
	for name, br := range breakers {
		c := defaultConfig()
		br(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalid, name)
	}
}
