// Package config handles configuration for the request-name server binary,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the request-name binary.
//
// Fields:
//   - DatabaseDriver: "sqlite" (default, single host) or "pgx" (shared store).
//   - DatabaseDSN: file path for sqlite, PostgreSQL DSN for pgx.
//   - AssetsDir: directory uploaded files are placed in; created on start.
//     This is an explicit setting so the binary never depends on its working
//     directory.
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	AssetsDir      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "filebin.sqlite3"
	c.AssetsDir = "assets"
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
