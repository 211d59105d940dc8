package migrate

import (
	"bytes"
	"context"

	"github.com/walteh/gsmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🧹 removeFacadeOperation strips the facade token from every listed
// file, then deletes the facade file itself
type removeFacadeOperation struct {
	opts     Options
	runner   *Runner
	replacer *text.SimpleTextReplacer
}

// NewRemoveFacadeOperation creates the remove-facade operation
func NewRemoveFacadeOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("invalid options: %w", err)
	}
	return &removeFacadeOperation{
		opts:     opts,
		runner:   NewRunner(opts.Config.Async),
		replacer: text.NewSimpleTextReplacer(),
	}, nil
}

func (op *removeFacadeOperation) Name() string {
	return "remove-facade"
}

// Execute rewrites each existing listed file with every occurrence of
// the facade token removed, printing one line per file. The token
// removal is idempotent; the trailing facade delete is not, and fails
// on a rerun once the facade is gone.
func (op *removeFacadeOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	rules := []text.ReplacementRule{
		{FromText: cfg.FacadeToken, ToText: ""},
	}
	if err := op.replacer.ValidateRules(rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	err := op.runner.EachScriptFile(ctx, cfg, func(ctx context.Context, name, path string) error {
		content, err := readFile(ctx, path)
		if err != nil {
			return err
		}

		result, err := op.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
		if err != nil {
			return errors.Errorf("replacing text: %w", err)
		}

		if err := writeFile(ctx, path, result.ModifiedContent); err != nil {
			return err
		}

		op.opts.Status.LogFileUpdated(name)
		return nil
	})
	if err != nil {
		return err
	}

	// Unguarded: the facade must still exist at this point.
	facadePath := cfg.Path(cfg.FacadeFile)
	if err := removeFile(ctx, facadePath); err != nil {
		return err
	}
	op.opts.Status.LogFileDeleted(facadePath)

	return nil
}
