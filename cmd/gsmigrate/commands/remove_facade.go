package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gsmigrate/cmd/gsmigrate/opts"
	"github.com/walteh/gsmigrate/pkg/migrate"
	"github.com/walteh/gsmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRemoveFacadeCmd creates the remove-facade command
func NewRemoveFacadeCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-facade",
		Short: "Strip facade references from the file list and delete the facade",
		Long: `Remove-facade retires the facade file.
It will:
1. Remove every occurrence of the facade token from each listed file
2. Print one line per rewritten file, in list order
3. Delete the facade file itself

Listed files that don't exist are skipped. The facade file must exist;
a rerun fails on the delete step once it is gone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "remove-facade").Logger().WithContext(ctx)

			cfg, err := o.Resolve(ctx)
			if err != nil {
				return err
			}

			op, err := migrate.NewRemoveFacadeOperation(migrate.Options{
				Config: cfg,
				Status: status.NewUserLogger(ctx, cmd.OutOrStdout(), nil),
			})
			if err != nil {
				return errors.Errorf("creating remove-facade operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("removing facade: %w", err)
			}

			return nil
		},
	}

	return cmd
}
