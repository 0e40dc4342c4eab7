package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks and progress from a JSON backup",
		Long: `Import a backup created by "gamedo export".

The current tasks and progress are replaced by the backup's contents.
Documents missing either the tasks or the progress section are rejected.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("input file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ImportData(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported from %s\n", ui.IconPackage, ui.Good.Render(args[0]))
			return nil
		},
	}

	return cmd
}
