package config

import (
	"encoding/json"
	"os"

	"github.com/vrocha/admincli/internal/flagx"
	"github.com/vrocha/admincli/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as "15s" or as integer
// nanoseconds.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
	PageSize       int            `json:"page_size"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON layer. Only fields present in
// the file override the defaults. Read or parse errors panic; the config
// file is operator input and a broken one should stop startup loudly.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
}
