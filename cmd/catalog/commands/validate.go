package commands

import (
	"fmt"

	"coursecat/internal/course"

	"github.com/spf13/cobra"
)

func newValidateCmd(rt *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog_file>",
		Short: "Check that every prerequisite is itself a course",
		Long: `The validate command loads a catalog file and checks that every prerequisite
names a course defined in the same file. It stops at the first dangling
prerequisite and exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := rt.app.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			if err := course.Validate(catalog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog is valid (%d courses).\n", catalog.Len())
			return nil
		},
	}
}
