package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the messagely CLI.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SessionFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.SessionFile = filepath.Join(".messagely", "session.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
