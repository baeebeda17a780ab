// Package config handles configuration for the filebin client, including
// defaults, JSON overlay, command-line flags, and parsing of the connection
// string.
package config

import "time"

// Config holds runtime settings for the filebin CLI.
//
// User, Password, Host, Port and RemoteDir come from the positional
// connection string (see ParseConnString); the remaining fields come from
// defaults, the optional JSON file, and flags, in that order of precedence.
type Config struct {
	User      string
	Password  string
	Host      string
	Port      int
	RemoteDir string

	// IdentityFile is the path of a private key to offer after the
	// password, empty for none.
	IdentityFile string

	// LinkBase is the public URL prefix uploads are served under.
	LinkBase string

	// DefaultExt is used when the source has no extension (stdin included).
	DefaultExt string

	// RequestNameCmd is the remote command that mints a name.
	RequestNameCmd string

	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration

	// ArgsFile is where the CLI offers to save its arguments on first run.
	ArgsFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Port = 22
	c.LinkBase = "https://bin.abitblue.com"
	c.DefaultExt = ".txt"
	c.RequestNameCmd = "requestname"
	c.DialTimeout = 10 * time.Second
	c.ArgsFile = "filebin.args"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. The connection string is applied separately
// by the CLI via ApplyConnString.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
