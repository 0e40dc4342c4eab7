package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Revert a completed task to pending",
		Long: `Revert a task to pending status.

XP and achievements already earned are kept; only the streak counters are
recomputed as if the task had not been completed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			if err := svc.UndoTask(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Completion reverted."))
			return nil
		},
	}

	return cmd
}
