package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gsmigrate/cmd/gsmigrate/commands"
	"github.com/walteh/gsmigrate/cmd/gsmigrate/opts"
)

// NewRootCmd creates the gsmigrate root command
func NewRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "gsmigrate",
		Short: "One-shot maintenance operations for the script project's utils refactor",
		Long: `gsmigrate bundles the maintenance steps used to reorganize the
project's utility script files: merging the utils implementation
into its facade, stripping facade references, regenerating the
facade's export block, and rewriting include paths and identifiers.

Each subcommand is a single-run operation over the files in the
working directory (or --dir). Without a config file, the built-in
file list and facade names are used.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, rootOpts.Debug)
		},
	}

	addRootFlags(cmd, rootOpts)

	cmd.AddCommand(
		commands.NewCombineCmd(rootOpts),
		commands.NewRemoveFacadeCmd(rootOpts),
		commands.NewRestoreFacadeCmd(rootOpts),
		commands.NewUpdateRefsCmd(rootOpts),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".gsmigrate", "config file path")
	cmd.PersistentFlags().StringVar(&o.Dir, "dir", "", "directory containing the script files (default: current directory)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&o.Async, "async", false, "process the file list concurrently")
}

// setupLogging configures zerolog and stores it on the command context
func setupLogging(cmd *cobra.Command, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	cmd.SetContext(logger.WithContext(cmd.Context()))
}
