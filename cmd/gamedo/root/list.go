package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/ui"
)

func newListCmd() *cobra.Command {
	var showCompleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.ListTasks(ctx)
			if err != nil {
				return err
			}

			shown := 0
			for i := range tasks {
				t := &tasks[i]
				if t.Completed && !showCompleted {
					continue
				}
				shown++

				check := "☐"
				title := t.Title
				if t.Completed {
					check = ui.Good.Render("☑")
					title = ui.Muted.Render(title)
				}
				line := fmt.Sprintf("%s %s  %s %s", check, title, ui.PriorityText(t.Priority), ui.Muted.Render(fmt.Sprintf("(%d pts)", t.Points)))
				if t.Category != "" {
					line += " " + ui.Muted.Render("#"+t.Category)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("  id: "+t.ID))
			}

			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks. Add one with `gamedo add`."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showCompleted, "all", "a", false, "Include completed tasks")

	return cmd
}
