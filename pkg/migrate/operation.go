// Package migrate implements the one-shot migration operations used to
// reorganize the script project's utils modules
package migrate

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/gsmigrate/pkg/config"
	"github.com/walteh/gsmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single migration step, run start-to-finish once
type Operation interface {
	// Name returns the operation's short name
	Name() string
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the shared dependencies of every operation
type Options struct {
	// Config is the migration configuration
	Config *config.Config
	// Status reports progress to the user
	Status *status.UserLogger
}

// validate checks that required options are set
func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.New("config is required")
	}
	if opts.Status == nil {
		return errors.New("status logger is required")
	}
	return nil
}

// readFile reads a required file in full. A missing required file is a
// fatal condition for the calling operation.
func readFile(ctx context.Context, path string) ([]byte, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("reading file")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// writeFile overwrites a file in place, fully replacing its content
func writeFile(ctx context.Context, path string, data []byte) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("writing file")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// removeFile deletes a file. The delete is unguarded: a missing file is
// an error, and there is no rollback of writes already made.
func removeFile(ctx context.Context, path string) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("removing file")
	if err := os.Remove(path); err != nil {
		return errors.Errorf("removing %s: %w", path, err)
	}
	return nil
}
