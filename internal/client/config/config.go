// Package config handles configuration for the client component.
package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerURL: base URL of the authentication server.
//   - SessionDB: path of the local SQLite file holding the persisted session.
type Config struct {
	ServerURL string
	SessionDB string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.SessionDB = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SERVER_URL"); v != "" {
		config.ServerURL = v
	}
	if v := os.Getenv("SESSION_DB"); v != "" {
		config.SessionDB = v
	}
}

func parseFlags(config *Config) {
	fs := flag.NewFlagSet("client", flag.ExitOnError)

	fs.StringVar(&config.ServerURL, "s", config.ServerURL, "server base URL")
	fs.StringVar(&config.SessionDB, "f", config.SessionDB, "session database file")

	_ = fs.Parse(os.Args[1:])
}
