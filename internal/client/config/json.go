package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/abitblue/filebin/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. DialTimeout
// is a Go duration string such as "10s".
type JsonConfig struct {
	IdentityFile   string `json:"identity_file"`
	LinkBase       string `json:"link_base"`
	DefaultExt     string `json:"default_ext"`
	RequestNameCmd string `json:"request_name_cmd"`
	DialTimeout    string `json:"dial_timeout"`
	ArgsFile       string `json:"args_file"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via -c or -config. Empty JSON fields leave the current value in
// place. Panics on read, unmarshal, or duration-parse errors.
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

	if jc.IdentityFile != "" {
		cfg.IdentityFile = jc.IdentityFile
	}
	if jc.LinkBase != "" {
		cfg.LinkBase = jc.LinkBase
	}
	if jc.DefaultExt != "" {
		cfg.DefaultExt = jc.DefaultExt
	}
	if jc.RequestNameCmd != "" {
		cfg.RequestNameCmd = jc.RequestNameCmd
	}
	if jc.ArgsFile != "" {
		cfg.ArgsFile = jc.ArgsFile
	}
	if jc.DialTimeout != "" {
		d, err := time.ParseDuration(jc.DialTimeout)
		if err != nil {
			panic(err)
		}
		cfg.DialTimeout = d
	}
}
