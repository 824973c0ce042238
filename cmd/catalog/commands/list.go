package commands

import (
	"coursecat/internal/query"

	"github.com/spf13/cobra"
)

func newListCmd(rt *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list <catalog_file>",
		Short: "Print every course sorted by course number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := rt.app.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			return query.ListAll(cmd.OutOrStdout(), catalog)
		},
	}
}
