package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/popx/internal/flagx"
	"github.com/dmitrijs2005/popx/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// SubmitDelay is a timex.Duration, so the file may say "1s" or give integer
// nanoseconds. Pointers tell an absent key from a zero value.
type JsonConfig struct {
	SessionDSN  *string         `json:"session_dsn"`
	SubmitDelay *timex.Duration `json:"submit_delay"`
	LogLevel    *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing happens. Keys missing from the
// file keep their current value. Read and decode errors panic.
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

	if jc.SessionDSN != nil {
		cfg.SessionDSN = *jc.SessionDSN
	}
	if jc.SubmitDelay != nil {
		cfg.SubmitDelay = jc.SubmitDelay.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
