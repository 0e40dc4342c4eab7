package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gamedo/internal/game"
	"gamedo/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show productivity statistics",
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
			s := game.ComputeStats(tasks, time.Now())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Statistics"))
			fmt.Fprintln(out, ui.LabelValue("Completed", fmt.Sprintf("%d / %d tasks", s.TasksCompleted, s.TotalTasks)))
			fmt.Fprintln(out, ui.LabelValue("Completion rate", fmt.Sprintf("%.0f%%", s.CompletionRate*100)))
			if s.TasksCompleted > 0 {
				fmt.Fprintln(out, ui.LabelValue("Average per day", fmt.Sprintf("%.1f", s.AveragePerDay)))
				fmt.Fprintln(out, ui.LabelValue("Most productive day", s.MostProductiveDay))
			}
			if len(s.CategoriesUsed) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Categories", strings.Join(s.CategoriesUsed, ", ")))
			}
			return nil
		},
	}

	return cmd
}
