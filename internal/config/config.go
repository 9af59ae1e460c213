// Package config loads service settings from defaults, an optional YAML
// file and ROADPATH_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when ROADPATH_CONFIG is unset.
const DefaultPath = "config.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Server struct {
		Addr                string   `yaml:"addr"`
		QueryTimeoutMs      int      `yaml:"query_timeout_ms"`
		ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int      `yaml:"write_timeout_seconds"`
		AllowOrigins        []string `yaml:"allow_origins"`
	} `yaml:"server"`
	Dataset struct {
		Path  string `yaml:"path"`
		Cache bool   `yaml:"cache"` // keep a gob copy next to Path
	} `yaml:"dataset"`
	Search struct {
		MaxSpeedKPH float64 `yaml:"max_speed_kph"`
		Calibrate   bool    `yaml:"calibrate"`
	} `yaml:"search"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

func defaultConfig() Config {
	var c Config
	c.Server.Addr = ":8080"
	c.Server.QueryTimeoutMs = 10000
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 30
	c.Server.AllowOrigins = []string{"*"}
	c.Dataset.Path = "graph.json"
	c.Dataset.Cache = true
	c.Search.MaxSpeedKPH = 150
	c.Search.Calibrate = true
	c.Logging.Level = "info"
	return c
}

// Load builds the configuration. A missing config file is not an error;
// an unreadable or malformed one is.
func Load() (Config, error) {
	c := defaultConfig()

	path := os.Getenv("ROADPATH_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err = applyEnv(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("ROADPATH_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ROADPATH_DATASET"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("ROADPATH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ROADPATH_LOG_PRETTY"); v != "" {
		c.Logging.Pretty = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("ROADPATH_ALLOW_ORIGINS"); v != "" {
		c.Server.AllowOrigins = splitCSV(v)
	}
	if v := os.Getenv("ROADPATH_MAX_SPEED_KPH"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: ROADPATH_MAX_SPEED_KPH: %w", err)
		}
		c.Search.MaxSpeedKPH = f
	}
	if v := os.Getenv("ROADPATH_QUERY_TIMEOUT_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: ROADPATH_QUERY_TIMEOUT_MS: %w", err)
		}
		c.Server.QueryTimeoutMs = n
	}
	return nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	case c.Dataset.Path == "":
		return fmt.Errorf("%w: dataset.path is empty", ErrInvalid)
	case !(c.Search.MaxSpeedKPH > 0):
		return fmt.Errorf("%w: search.max_speed_kph must be positive, got %v", ErrInvalid, c.Search.MaxSpeedKPH)
	case c.Server.QueryTimeoutMs <= 0:
		return fmt.Errorf("%w: server.query_timeout_ms must be positive, got %d", ErrInvalid, c.Server.QueryTimeoutMs)
	}
	return nil
}

// QueryTimeout is the per-query deadline.
func (c Config) QueryTimeout() time.Duration {
	return time.Duration(c.Server.QueryTimeoutMs) * time.Millisecond
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
