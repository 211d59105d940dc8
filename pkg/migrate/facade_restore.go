package migrate

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/gsmigrate/pkg/config"
	"github.com/walteh/gsmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔁 restoreFacadeOperation regenerates the facade file from its
// pre-marker header plus the fixed export mapping block
type restoreFacadeOperation struct {
	opts    Options
	exports []config.ExportEntry
}

// NewRestoreFacadeOperation creates the restore-facade operation
func NewRestoreFacadeOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("invalid options: %w", err)
	}
	return &restoreFacadeOperation{
		opts:    opts,
		exports: config.DefaultExports,
	}, nil
}

func (op *restoreFacadeOperation) Name() string {
	return "restore-facade"
}

// Execute keeps whatever header the facade currently has and replaces
// everything from the marker on with the rendered export block. The
// tail of the result is identical on every run regardless of the
// previous content.
func (op *restoreFacadeOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config
	facadePath := cfg.Path(cfg.FacadeFile)

	content, err := readFile(ctx, facadePath)
	if err != nil {
		return err
	}

	header := text.HeaderBefore(string(content), config.Marker)
	restored := header + config.ExportBlock(op.exports)

	if err := writeFile(ctx, facadePath, []byte(restored)); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("facade", cfg.FacadeFile).
		Int("exports", len(op.exports)).
		Msg("restored facade")
	return nil
}
