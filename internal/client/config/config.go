package config

import (
	"time"

	"github.com/stitchdesk/stitchdesk/internal/common"
)

// Config holds runtime settings for the StitchDesk CLI.
//
// Fields:
//   - BaseAPIURL: root URL of the backend REST API (required).
//   - BaseAssetURL: root URL for stored assets such as brand logos (required).
//   - RequestTimeout: per-request deadline applied by the API client.
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - TokenFile: path of the persisted auth token; empty means the
//     platform-default location under the user config directory.
//   - LogLevel: minimum level for terminal log output (debug/info/warn/error).
type Config struct {
	BaseAPIURL          string
	BaseAssetURL        string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	TokenFile           string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults. The base URLs have no
// default: they must come from JSON, environment, or flags.
func (c *Config) LoadDefaults() {
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.LogLevel = "info"
}

// Validate reports whether the config is complete enough to start.
// The client cannot function without both base URLs.
func (c *Config) Validate() error {
	if c.BaseAPIURL == "" || c.BaseAssetURL == "" {
		return common.ErrMissingBaseURL
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables (including a .env file), and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
