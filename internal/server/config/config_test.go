package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "filebin.sqlite3", c.DatabaseDSN)
	assert.Equal(t, "assets", c.AssetsDir)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"requestname", "-t", "pgx", "-d", "postgres://localhost/filebin"}

	cfg := LoadConfig()
	assert.Equal(t, "pgx", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://localhost/filebin", cfg.DatabaseDSN)
	assert.Equal(t, "assets", cfg.AssetsDir)
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn":"from.json","assets_dir":"files"}`), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	// flags win over JSON for the DSN, JSON wins over defaults for the dir
	os.Args = []string{"requestname", "-c", path, "-d", "from.flag"}

	cfg := LoadConfig()
	assert.Equal(t, "from.flag", cfg.DatabaseDSN)
	assert.Equal(t, "files", cfg.AssetsDir)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
}
