package migrate

import (
	"bytes"
	"context"

	"github.com/walteh/gsmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// utilsPrefix is injected in front of include arguments and the old
// module identifiers
const utilsPrefix = "Utils_"

// utilsModules are the utility module identifiers renamed by the
// refactor
var utilsModules = []string{"CoreUtils", "EmailUtils", "AnalysisUtils", "DataUtils"}

// sectionModules are the report-section module identifiers renamed by
// the refactor
var sectionModules = []string{
	"FundamentalMetrics",
	"MacroeconomicFactors",
	"MarketIndicators",
	"MarketSentiment",
	"GeopoliticalRisks",
}

// ✏️ updateRefsOperation rewrites include paths and module identifiers
// across the listed files
type updateRefsOperation struct {
	opts     Options
	runner   *Runner
	rewriter *text.RegexRewriter
	rules    []text.RewriteRule
}

// NewUpdateRefsOperation creates the update-refs operation
func NewUpdateRefsOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("invalid options: %w", err)
	}
	return &updateRefsOperation{
		opts:     opts,
		runner:   NewRunner(opts.Config.Async),
		rewriter: text.NewRegexRewriter(),
		rules: []text.RewriteRule{
			text.IncludePrefixRule(utilsPrefix),
			text.IdentifierPrefixRule("utils-modules", utilsPrefix, utilsModules...),
			text.IdentifierPrefixRule("section-modules", utilsPrefix, sectionModules...),
		},
	}, nil
}

func (op *updateRefsOperation) Name() string {
	return "update-refs"
}

// Execute applies the three rewrite passes in sequence to each existing
// listed file, printing one line per file. The passes inject the prefix
// unconditionally, so rerunning prefixes again (Utils_CoreUtils becomes
// Utils_Utils_CoreUtils); that matches the original scripts and is left
// as-is on purpose.
func (op *updateRefsOperation) Execute(ctx context.Context) error {
	return op.runner.EachScriptFile(ctx, op.opts.Config, func(ctx context.Context, name, path string) error {
		content, err := readFile(ctx, path)
		if err != nil {
			return err
		}

		result, err := op.rewriter.RewriteText(ctx, bytes.NewReader(content), op.rules)
		if err != nil {
			return errors.Errorf("rewriting text: %w", err)
		}

		if err := writeFile(ctx, path, result.ModifiedContent); err != nil {
			return err
		}

		op.opts.Status.LogFileUpdated(name)
		return nil
	})
}
