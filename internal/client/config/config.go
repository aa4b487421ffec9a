// Package config loads runtime settings for the DMA console.
//
// Sources are layered: compiled-in defaults, then an optional JSON file
// (-c/-config), then command-line flags. Later sources win.
package config

// Config holds runtime settings for the console.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the DMA REST backend.
//   - DatabasePath: sqlite file holding the persisted session.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "dma.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
