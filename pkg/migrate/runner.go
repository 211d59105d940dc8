package migrate

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/gsmigrate/pkg/config"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// FileFunc processes a single listed script file. name is the list
// entry, path the resolved location on disk.
type FileFunc func(ctx context.Context, name, path string) error

// 🏃 Runner iterates the configured script file list. The default is
// sequential, in list order; async mode processes files concurrently
// (safe because every listed file's update is independent).
type Runner struct {
	async bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool) *Runner {
	return &Runner{async: async}
}

// EachScriptFile applies fn to every listed file that exists and is not
// ignored. Missing files are skipped silently; any error from fn stops
// the iteration.
func (r *Runner) EachScriptFile(ctx context.Context, cfg *config.Config, fn FileFunc) error {
	if r.async {
		return r.eachAsync(ctx, cfg, fn)
	}
	return r.eachSync(ctx, cfg, fn)
}

// 🔄 eachSync visits files one at a time, in list order
func (r *Runner) eachSync(ctx context.Context, cfg *config.Config, fn FileFunc) error {
	for _, name := range cfg.ScriptFiles {
		path, ok, err := r.shouldProcess(ctx, cfg, name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := fn(ctx, name, path); err != nil {
			return errors.Errorf("processing %s: %w", name, err)
		}
	}
	return nil
}

// ⚡ eachAsync visits files concurrently
func (r *Runner) eachAsync(ctx context.Context, cfg *config.Config, fn FileFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range cfg.ScriptFiles {
		path, ok, err := r.shouldProcess(ctx, cfg, name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		name := name
		g.Go(func() error {
			if err := fn(ctx, name, path); err != nil {
				return errors.Errorf("processing %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// 🔍 shouldProcess resolves a list entry and checks existence and
// ignore patterns
func (r *Runner) shouldProcess(ctx context.Context, cfg *config.Config, name string) (string, bool, error) {
	logger := zerolog.Ctx(ctx)

	path := cfg.Path(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("file", name).Msg("file does not exist, skipping")
			return path, false, nil
		}
		return path, false, errors.Errorf("checking %s: %w", path, err)
	}

	for _, pattern := range cfg.IgnorePatterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("file", name).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return path, false, nil
		}
	}

	return path, true, nil
}
