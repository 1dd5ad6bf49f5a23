// Package config loads settings for the gophauth command-line client.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the gRPC endpoint.
//   - RequestTimeout: deadline applied to each call.
//   - SessionFile: SQLite file that keeps the current token pair between runs.
type Config struct {
	ServerEndpointAddr string        `env:"GOPHAUTH_SERVER_ADDR"`
	RequestTimeout     time.Duration `env:"GOPHAUTH_REQUEST_TIMEOUT"`
	SessionFile        string        `env:"GOPHAUTH_SESSION_FILE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = "gophauth-session.db"
}

// LoadConfig applies defaults, then the JSON file named by -c, then the
// environment, then flags. It returns the positional arguments left after
// the flags, i.e. the command and its operands.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}
	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

func (c *Config) Validate() error {
	if c.ServerEndpointAddr == "" {
		return fmt.Errorf("%w: server address is empty", common.ErrConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", common.ErrConfig)
	}
	if c.SessionFile == "" {
		return fmt.Errorf("%w: session file is empty", common.ErrConfig)
	}
	return nil
}
