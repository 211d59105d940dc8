package migrate

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/gsmigrate/pkg/config"
	"github.com/walteh/gsmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔗 combineOperation merges the source file's body into the facade
// file below the marker, then deletes the source file
type combineOperation struct {
	opts Options
}

// NewCombineOperation creates the combine operation
func NewCombineOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("invalid options: %w", err)
	}
	return &combineOperation{opts: opts}, nil
}

func (op *combineOperation) Name() string {
	return "combine"
}

// Execute reads both files, keeps the facade's pre-marker header, and
// rebuilds the facade as header + marker + source content. The source
// file is deleted last; the two file mutations are not atomic, so a
// failed delete leaves the facade already rewritten.
func (op *combineOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config
	logger := zerolog.Ctx(ctx)

	srcPath := cfg.Path(cfg.SourceFile)
	facadePath := cfg.Path(cfg.FacadeFile)

	srcContent, err := readFile(ctx, srcPath)
	if err != nil {
		return err
	}

	facadeContent, err := readFile(ctx, facadePath)
	if err != nil {
		return err
	}

	header := text.HeaderBefore(string(facadeContent), config.Marker)
	combined := text.JoinAtMarker(header, config.Marker, string(srcContent))

	if err := writeFile(ctx, facadePath, []byte(combined)); err != nil {
		return err
	}

	if err := removeFile(ctx, srcPath); err != nil {
		return err
	}
	op.opts.Status.LogFileDeleted(srcPath)

	logger.Debug().
		Str("source", cfg.SourceFile).
		Str("facade", cfg.FacadeFile).
		Msg("combined source into facade")
	return nil
}
