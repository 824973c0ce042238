package commands

import (
	"coursecat/internal/query"

	"github.com/spf13/cobra"
)

func newSearchCmd(rt *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "search <catalog_file> <course_number>",
		Short: "Print a single course and its prerequisites",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := rt.app.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			return query.Search(cmd.OutOrStdout(), catalog, args[1])
		},
	}
}
