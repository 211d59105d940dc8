package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gsmigrate/cmd/gsmigrate/opts"
	"github.com/walteh/gsmigrate/pkg/migrate"
	"github.com/walteh/gsmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRestoreFacadeCmd creates the restore-facade command
func NewRestoreFacadeCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore-facade",
		Short: "Regenerate the facade file's export block",
		Long: `Restore-facade rebuilds the facade file.
It will:
1. Keep the facade's header (everything before the export marker)
2. Replace the rest with the fixed export mapping block

The facade file must exist. The regenerated tail is identical on
every run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "restore-facade").Logger().WithContext(ctx)

			cfg, err := o.Resolve(ctx)
			if err != nil {
				return err
			}

			op, err := migrate.NewRestoreFacadeOperation(migrate.Options{
				Config: cfg,
				Status: status.NewUserLogger(ctx, cmd.OutOrStdout(), nil),
			})
			if err != nil {
				return errors.Errorf("creating restore-facade operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("restoring facade: %w", err)
			}

			return nil
		},
	}

	return cmd
}
