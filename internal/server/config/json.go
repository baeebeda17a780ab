package config

import (
	"encoding/json"
	"os"

	"github.com/abitblue/filebin/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabaseDriver string `json:"database_driver"`
	DatabaseDSN    string `json:"database_dsn"`
	AssetsDir      string `json:"assets_dir"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via -c or -config. Empty JSON fields leave the current value in
// place. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDriver != "" {
		cfg.DatabaseDriver = jc.DatabaseDriver
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AssetsDir != "" {
		cfg.AssetsDir = jc.AssetsDir
	}
}
