package config

import "time"

// Backend names accepted for the two storage tiers.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds runtime settings for the portal client.
//
// Fields:
//   - PersistentBackend: store for remembered sessions and the user list
//     (sqlite, postgres or redis).
//   - VolatileBackend: store for non-remembered sessions (memory or redis).
//   - SQLitePath, PostgresDSN, RedisAddr: connection settings per backend.
//   - RememberTTL / SessionTTL: expiry of persistent / volatile sessions.
//   - SimulatedDelay / SignupDelay: artificial latency of form submissions.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	PersistentBackend string
	VolatileBackend   string
	SQLitePath        string
	PostgresDSN       string
	RedisAddr         string
	RememberTTL       time.Duration
	SessionTTL        time.Duration
	SimulatedDelay    time.Duration
	SignupDelay       time.Duration
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.PersistentBackend = BackendSQLite
	c.VolatileBackend = BackendMemory
	c.SQLitePath = "portal.db"
	c.PostgresDSN = ""
	c.RedisAddr = "127.0.0.1:6379"
	c.RememberTTL = 24 * time.Hour
	c.SessionTTL = time.Hour
	c.SimulatedDelay = 1500 * time.Millisecond
	c.SignupDelay = 2 * time.Second
	c.LogLevel = "info"
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
