package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/idelchi/goseal/internal/config"
)

// unmarshalConfig collects flags and environment variables into a validated
// configuration for the batch runner.
func unmarshalConfig(args []string, decrypt bool) (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Files = args
	cfg.Decrypt = decrypt

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
