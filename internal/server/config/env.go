package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// parseEnv overlays GOPHAUTH_* variables. Unset variables leave the
// current value alone; durations use Go syntax ("15m", "720h").
func parseEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("%w: parse env: %v", common.ErrConfig, err)
	}
	return nil
}
