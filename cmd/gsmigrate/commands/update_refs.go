package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gsmigrate/cmd/gsmigrate/opts"
	"github.com/walteh/gsmigrate/pkg/migrate"
	"github.com/walteh/gsmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewUpdateRefsCmd creates the update-refs command
func NewUpdateRefsCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-refs",
		Short: "Rewrite include paths and module identifiers in the file list",
		Long: `Update-refs rewrites references to the renamed utils modules.
It will:
1. Prefix every include("X") / include('X') argument with Utils_
2. Prefix the standalone utils module identifiers with Utils_
3. Prefix the standalone section module identifiers with Utils_
4. Print one line per rewritten file, in list order

Listed files that don't exist are skipped. This command is NOT
idempotent: a rerun prefixes already-prefixed identifiers again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "update-refs").Logger().WithContext(ctx)

			cfg, err := o.Resolve(ctx)
			if err != nil {
				return err
			}

			op, err := migrate.NewUpdateRefsOperation(migrate.Options{
				Config: cfg,
				Status: status.NewUserLogger(ctx, cmd.OutOrStdout(), nil),
			})
			if err != nil {
				return errors.Errorf("creating update-refs operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("updating references: %w", err)
			}

			return nil
		},
	}

	return cmd
}
