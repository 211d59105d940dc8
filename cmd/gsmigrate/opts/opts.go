// Package opts carries the root command's flag values and resolves them
// into a migration configuration.
package opts

import (
	"context"

	"github.com/walteh/gsmigrate/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🔧 RootOpts holds the shared flag values of every subcommand
type RootOpts struct {
	ConfigFile string // config file path; missing file means defaults
	Dir        string // overrides the configured script directory
	Debug      bool   // enable debug logging
	Async      bool   // process the file list concurrently
}

// Resolve loads the configuration and applies flag overrides on top
func (o *RootOpts) Resolve(ctx context.Context) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if o.Dir != "" {
		cfg.Dir = o.Dir
	}
	if o.Async {
		cfg.Async = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
