package config

import (
	"encoding/json"
	"os"

	"github.com/chandra/dmacli/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the corresponding Config values untouched.
type jsonConfig struct {
	ServerBaseURL *string `json:"server_base_url"`
	DatabasePath  *string `json:"database_path"`
}

// parseJSON overlays Config with values from a JSON file when -c/-config
// names one. Read or unmarshal errors panic; the binary cannot start with a
// config file it cannot honor.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
}
