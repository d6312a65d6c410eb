package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/messagely/internal/flagx"
)

var ownFlags = []string{"a", "d", "s", "t", "w", "n", "l"}

// parseFlags overlays Config with command-line flags.
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   token signing secret
//	-t int      access token validity, minutes (0 = no expiry)
//	-w int      bcrypt work factor
//	-n int      concurrent password hashes
//	-l string   log level
//
// Arguments that belong to other flag sets are filtered out first. A
// malformed value panics; LoadConfig runs before anything else in main.
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SigningSecret, "s", config.SigningSecret, "token signing secret")
	validity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "access token validity (in minutes, 0 = no expiry)")
	fs.IntVar(&config.HashWorkFactor, "w", config.HashWorkFactor, "bcrypt work factor")
	fs.IntVar(&config.HashConcurrency, "n", config.HashConcurrency, "max concurrent password hashes")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, ownFlags)); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*validity) * time.Minute
}
