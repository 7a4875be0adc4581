package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/portalauth/internal/flagx"
	"github.com/dmitrijs2005/portalauth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero".
type JsonConfig struct {
	PersistentBackend *string         `json:"persistent_backend"`
	VolatileBackend   *string         `json:"volatile_backend"`
	SQLitePath        *string         `json:"sqlite_path"`
	PostgresDSN       *string         `json:"postgres_dsn"`
	RedisAddr         *string         `json:"redis_addr"`
	RememberTTL       *timex.Duration `json:"remember_ttl"`
	SessionTTL        *timex.Duration `json:"session_ttl"`
	SimulatedDelay    *timex.Duration `json:"simulated_delay"`
	SignupDelay       *timex.Duration `json:"signup_delay"`
	LogLevel          *string         `json:"log_level"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}

// parseJson overlays Config with values loaded from the JSON file named by
// flagx.ConfigFile. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
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

	setString(&cfg.PersistentBackend, jc.PersistentBackend)
	setString(&cfg.VolatileBackend, jc.VolatileBackend)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.PostgresDSN, jc.PostgresDSN)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.LogLevel, jc.LogLevel)

	setDuration(&cfg.RememberTTL, jc.RememberTTL)
	setDuration(&cfg.SessionTTL, jc.SessionTTL)
	setDuration(&cfg.SimulatedDelay, jc.SimulatedDelay)
	setDuration(&cfg.SignupDelay, jc.SignupDelay)
}
