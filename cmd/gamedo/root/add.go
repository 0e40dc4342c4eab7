package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/game"
	"gamedo/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		priority    string
		category    string
		points      int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			prio, ok := game.ParsePriority(priority)
			if !ok {
				return fmt.Errorf("invalid priority %q (low|medium|high)", priority)
			}

			t, err := svc.CreateTask(ctx, game.CreateTaskInput{
				Title:       args[0],
				Description: description,
				Priority:    prio,
				Category:    category,
				Points:      points,
			})
			if err != nil {
				return err
			}

			potential := game.XPForTask(*t)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q  %s %s\n",
				ui.Good.Render(ui.IconTarget),
				t.Title,
				ui.PriorityText(t.Priority),
				ui.Muted.Render(fmt.Sprintf("(worth %d XP)", potential)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "Optional description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (free-form, e.g. Work)")
	cmd.Flags().IntVarP(&points, "points", "x", 10, "Base point value")

	return cmd
}
