package config

import (
	"time"

	"github.com/dmitrijs2005/popx/internal/client/storage"
	"github.com/dmitrijs2005/popx/internal/client/views"
)

// Config holds runtime settings for the popx client.
//
// Fields:
//   - SessionDSN: SQLite DSN of the session database.
//   - SubmitDelay: simulated latency applied to login and signup submissions.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	SessionDSN  string
	SubmitDelay time.Duration
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.SessionDSN = storage.DefaultDSN
	c.SubmitDelay = views.DefaultSubmitDelay
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
