package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/messagely/internal/flagx"
	"github.com/dmitrijs2005/messagely/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from an explicit zero, so a file only overrides what it sets.
type JsonConfig struct {
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SigningSecret         *string         `json:"signing_secret"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	HashWorkFactor        *int            `json:"hash_work_factor"`
	HashConcurrency       *int            `json:"hash_concurrency"`
	LogLevel              *string         `json:"log_level"`
}

// parseJson overlays Config with the JSON file named by -c / -config.
// Without either flag nothing is loaded. Unreadable or invalid files panic.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var c JsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SigningSecret != nil {
		config.SigningSecret = *c.SigningSecret
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.HashWorkFactor != nil {
		config.HashWorkFactor = *c.HashWorkFactor
	}
	if c.HashConcurrency != nil {
		config.HashConcurrency = *c.HashConcurrency
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
