package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gsmigrate/cmd/gsmigrate/opts"
	"github.com/walteh/gsmigrate/pkg/migrate"
	"github.com/walteh/gsmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCombineCmd creates the combine command
func NewCombineCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge the utils source file into the facade file",
		Long: `Combine merges the utils implementation into the facade file.
It will:
1. Keep the facade's header (everything before the export marker)
2. Append the marker and the full utils source content
3. Overwrite the facade and delete the utils source file

Both files must exist. The two mutations are not atomic.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "combine").Logger().WithContext(ctx)

			cfg, err := o.Resolve(ctx)
			if err != nil {
				return err
			}

			op, err := migrate.NewCombineOperation(migrate.Options{
				Config: cfg,
				Status: status.NewUserLogger(ctx, cmd.OutOrStdout(), nil),
			})
			if err != nil {
				return errors.Errorf("creating combine operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("combining files: %w", err)
			}

			return nil
		},
	}

	return cmd
}
