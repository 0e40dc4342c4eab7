package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/ui"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export tasks and progress to a JSON backup",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("output file is required")
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

			if err := svc.ExportData(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported to %s\n", ui.IconPackage, ui.Good.Render(args[0]))
			return nil
		},
	}

	return cmd
}
