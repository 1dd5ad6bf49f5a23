package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags overlays the short flags found in args.
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-o string   ops HTTP bind address, empty disables
//	-k string   database driver: postgres or sqlite
//	-d string   database DSN
//	-s string   HS256 secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-x int      absolute session ceiling, minutes
//	-l string   log level
//
// Other flags in args are ignored so -c/-config can live alongside.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-o", "-k", "-d", "-s", "-t", "-r", "-x", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.OpsAddr, "o", config.OpsAddr, "address and port for /healthz and /metrics")
	fs.StringVar(&config.DatabaseDriver, "k", config.DatabaseDriver, "database driver (postgres|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	accessMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshMinutes := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")
	ceilingMinutes := fs.Int("x", int(config.SessionCeiling.Minutes()), "absolute session ceiling (in minutes)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// durations are only overwritten when the flag was given, so sub-minute
	// values from env or JSON survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessMinutes) * time.Minute
		case "r":
			config.RefreshTokenValidityDuration = time.Duration(*refreshMinutes) * time.Minute
		case "x":
			config.SessionCeiling = time.Duration(*ceilingMinutes) * time.Minute
		}
	})

	return nil
}
