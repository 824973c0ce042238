package commands

import (
	"fmt"
	"os"

	"coursecat/internal/app"
	"coursecat/internal/config"
	"coursecat/internal/logging"

	"github.com/spf13/cobra"
)

// cliState holds the state shared by the commands of one invocation.
type cliState struct {
	cfg *config.Config
	app *app.App
}

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the interactive menu.
func NewRootCmd() *cobra.Command {
	rt := &cliState{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Look up courses and prerequisites from a catalog file",
		Long: `catalog loads comma-delimited course records (number, title, prerequisites)
into memory and lets you list, search, and validate them from a numbered menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.cfg.Validate(); err != nil {
				return err
			}
			logger := logging.New(rt.cfg.Logging.Level, rt.cfg.Logging.Format, cmd.ErrOrStderr())
			rt.app = app.NewApp(rt.cfg, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.app != nil {
				_ = rt.app.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.app.RunInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rt.cfg.Logging.Level, "log-level", rt.cfg.Logging.Level, "Minimum log level: debug, info, warn, error")
	flags.StringVar(&rt.cfg.Logging.Format, "log-format", rt.cfg.Logging.Format, "Log encoding: console or json")
	flags.StringVarP(&rt.cfg.Catalog.Delimiter, "delimiter", "d", rt.cfg.Catalog.Delimiter, "Field delimiter used in catalog files")

	rootCmd.Flags().StringVarP(&rt.cfg.Catalog.File, "file", "f", "", "Catalog file to load before showing the menu")
	rootCmd.Flags().BoolVar(&rt.cfg.Catalog.ValidateOnLoad, "validate-on-load", false, "Check prerequisites after every load")

	rootCmd.AddCommand(
		newListCmd(rt),
		newSearchCmd(rt),
		newValidateCmd(rt),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
