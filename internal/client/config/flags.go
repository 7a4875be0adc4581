package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/portalauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args down to the flags it knows about, using
// flagx.FilterArgs, so that -c/-config and other flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-v", "-d", "-P", "-r", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.PersistentBackend, "p", cfg.PersistentBackend, "persistent backend (sqlite, postgres, redis)")
	fs.StringVar(&cfg.VolatileBackend, "v", cfg.VolatileBackend, "volatile backend (memory, redis)")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "sqlite database file")
	fs.StringVar(&cfg.PostgresDSN, "P", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	delay := fs.Int("s", int(cfg.SimulatedDelay.Milliseconds()), "simulated request delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SimulatedDelay = time.Duration(*delay) * time.Millisecond
}
