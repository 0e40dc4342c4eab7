package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/game"
	"gamedo/internal/ui"
)

func newStreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show daily streak and milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Progress(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFlame, "Daily Streak"))
			fmt.Fprintln(out, ui.LabelValue("Current", fmt.Sprintf("%d days", p.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Longest", fmt.Sprintf("%d days", p.LongestStreak)))

			if reward := game.StreakMilestoneReward(p.CurrentStreak); reward > 0 {
				fmt.Fprintf(out, "%s Milestone day! +%d bonus XP\n", ui.Gold.Render(ui.IconSparkle), reward)
			}
			if days, reward, ok := game.NextStreakMilestone(p.CurrentStreak); ok {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Next milestone: %d days (+%d XP)", days, reward)))
			}
			return nil
		},
	}

	return cmd
}
